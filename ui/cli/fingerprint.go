// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/tasagare/core/fingerprint"
	"github.com/toeirei/tasagare/internal/i18n"
	"github.com/toeirei/tasagare/internal/logging"
)

// clipboardWrite is swapped out by tests.
var clipboardWrite = clipboard.WriteAll

// ErrMismatch is returned by `verify` when the credential does not match.
var ErrMismatch = errors.New("fingerprint mismatch")

func newFingerprintCmd(a *app) *cobra.Command {
	var copyResult bool
	cmd := &cobra.Command{
		Use:   "fingerprint [credential...]",
		Short: i18n.T("fingerprint.short"),
		Long: `Prints one fingerprint per credential. Credentials are taken from the
arguments, from a no-echo prompt when run on a terminal, or one per line
from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secrets, err := readSecrets(cmd, args)
			if err != nil {
				return err
			}
			a.warnDefaultSeed()

			results := make([]string, len(secrets))
			for i := range secrets {
				results[i] = a.finalizer.FingerprintSecret(secrets[i])
				secrets[i].Zero()
			}
			logging.Debugf("fingerprinted %d credential(s)", len(results))

			if copyResult {
				if len(results) != 1 {
					return errors.New(i18n.T("fingerprint.copy_multi", len(results)))
				}
				if err := clipboardWrite(results[0]); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("fingerprint.copied"))
			}
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "Also copy the fingerprint to the clipboard")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	var stored string
	cmd := &cobra.Command{
		Use:   "verify --stored <fingerprint> [credential]",
		Short: i18n.T("verify.short"),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored = strings.TrimSpace(stored)
			if stored == "" {
				return errors.New(i18n.T("verify.stored_required"))
			}
			if len(stored) != fingerprint.Size {
				return errors.New(i18n.T("verify.stored_malformed", fingerprint.Size, len(stored)))
			}

			secrets, err := readSecrets(cmd, args)
			if err != nil {
				return err
			}
			if len(secrets) == 0 {
				return errors.New(i18n.T("error.read_input", "empty input"))
			}
			s := secrets[0]
			defer s.Zero()

			if !a.finalizer.VerifySecret(s, stored) {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("verify.mismatch"))
				return ErrMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("verify.match"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&stored, "stored", "s", "", "Stored fingerprint to compare against")
	return cmd
}
