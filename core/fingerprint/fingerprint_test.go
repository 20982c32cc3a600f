// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package fingerprint

import (
	"regexp"
	"sync"
	"testing"

	"github.com/toeirei/tasagare/core/security"
)

var hexFingerprint = regexp.MustCompile(`^[0-9a-f]{96}$`)

// Golden vectors recorded from fingerprints stored by existing deployments.
func TestFingerprint_DefaultSeedGolden(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004"},
		{"password", "fa23a9fbd31703b7c4492614856c887255fc65690273e7a7933a80450c174cd4bbfc9ff4ffbb2cac91b8e7e132b9d9f1"},
		{"password1", "8f2dced42f616762494fe1ec3c2c2bb5b6e203247d8d284ca2c7ff92ceb18359a8aa3f85d5762f36def6ff65beb35e0f"},
		{"password2", "e3a6c4247acc13f42066d18d1cd905fd4cafd181c5687cb3e2274a7f5fbfc86b0384927037608e91f562b061a367f719"},
		{"hunter2", "23655ff138bcac8593e94d801afb338608e42c2ab1b8ec8e89df9522b9111c111e518d7ce734f66471bfaaedd2bfc3c5"},
		{"héllo wörld ✓", "9c4604943729988f321e3a1d146c6182f0dfc404db259fa41018b73512fa57ae5fef283a59d5dbf18acfe492543582f3"},
	}
	for _, tc := range cases {
		if got := Fingerprint(tc.in); got != tc.want {
			t.Errorf("Fingerprint(%q):\n got %s\nwant %s", tc.in, got, tc.want)
		}
	}
}

func TestFingerprint_ConfiguredSeedGolden(t *testing.T) {
	f := New("s3cr3t-deployment-seed")
	if f.UsesDefaultSeed() {
		t.Fatal("configured seed reported as default")
	}
	cases := []struct{ in, want string }{
		{"password1", "27180061e8b6c14359b09c82b321e6f4a0058d2e05e5f29b075e7df6fb3f88d1cd85675525f16a80c410cc1171f068f7"},
		{"héllo wörld ✓", "a3040c5137defaf33a0cadcada028d0a13521709dcb8bfef0217308778649f629fdf2946b551ea0c081b31d228ad956a"},
	}
	for _, tc := range cases {
		if got := f.Fingerprint(tc.in); got != tc.want {
			t.Errorf("Fingerprint(%q):\n got %s\nwant %s", tc.in, got, tc.want)
		}
	}
}

func TestNew_EmptySeedFallsBack(t *testing.T) {
	f := New("")
	if !f.UsesDefaultSeed() {
		t.Fatal("empty seed should fall back to DefaultSeed")
	}
	if f.Fingerprint("password1") != Fingerprint("password1") {
		t.Fatal("fallback finalizer disagrees with package-level Fingerprint")
	}
}

func TestFingerprint_Format(t *testing.T) {
	for _, in := range []string{"", "a", "password", "日本語", string(make([]byte, 4096))} {
		got := Fingerprint(in)
		if len(got) != Size || !hexFingerprint.MatchString(got) {
			t.Fatalf("Fingerprint(%q) malformed: %q", in, got)
		}
		if again := Fingerprint(in); again != got {
			t.Fatalf("Fingerprint(%q) not deterministic", in)
		}
	}
}

func TestFingerprint_Sensitivity(t *testing.T) {
	if Fingerprint("password1") == Fingerprint("password2") {
		t.Fatal("different credentials produced the same fingerprint")
	}
	if New("seed-a").Fingerprint("password1") == New("seed-b").Fingerprint("password1") {
		t.Fatal("different seeds produced the same fingerprint")
	}
}

func TestVerify(t *testing.T) {
	f := New("")
	stored := f.Fingerprint("correct horse")
	if !f.Verify("correct horse", stored) {
		t.Fatal("expected matching credential to verify")
	}
	if f.Verify("correct horsE", stored) {
		t.Fatal("expected different credential to fail")
	}
	if f.Verify("correct horse", stored[:10]) {
		t.Fatal("expected truncated stored value to fail")
	}
	if !f.VerifySecret(security.FromString("correct horse"), stored) {
		t.Fatal("expected wrapped credential to verify")
	}
	if f.FingerprintSecret(security.FromString("correct horse")) != stored {
		t.Fatal("FingerprintSecret disagrees with Fingerprint")
	}
}

func TestFingerprint_Concurrent(t *testing.T) {
	f := New("concurrency")
	inputs := []string{"alpha", "bravo", "charlie", "delta", ""}
	want := make(map[string]string, len(inputs))
	for _, in := range inputs {
		want[in] = f.Fingerprint(in)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var mismatches []string
	for i := 0; i < 100; i++ {
		in := inputs[i%len(inputs)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := f.Fingerprint(in); got != want[in] {
				mu.Lock()
				mismatches = append(mismatches, in)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(mismatches) > 0 {
		t.Fatalf("concurrent fingerprints differed for %v", mismatches)
	}
}
