// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/tasagare/core/security"
	"github.com/toeirei/tasagare/internal/i18n"
	"golang.org/x/term"
)

const maxLineBytes = 1 << 20

// readSecrets returns the credentials to process: the positional arguments
// if any, otherwise a no-echo prompt when stdin is a terminal, otherwise one
// credential per line of stdin.
func readSecrets(cmd *cobra.Command, args []string) ([]security.Secret, error) {
	if len(args) > 0 {
		out := make([]security.Secret, len(args))
		for i, arg := range args {
			out[i] = security.FromString(arg)
		}
		return out, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), i18n.T("fingerprint.prompt"))
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return nil, errors.New(i18n.T("error.read_input", err))
		}
		s := security.FromBytes(raw)
		clear(raw)
		return []security.Secret{s}, nil
	}

	return readSecretLines(in)
}

func readSecretLines(r io.Reader) ([]security.Secret, error) {
	var out []security.Secret
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		out = append(out, security.FromLine(sc.Bytes()))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.New(i18n.T("error.read_input", err))
	}
	return out, nil
}

// readText returns the single argument, or the first line of stdin.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	secrets, err := readSecretLines(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	if len(secrets) == 0 {
		return "", nil
	}
	return secrets[0].Reveal(), nil
}
