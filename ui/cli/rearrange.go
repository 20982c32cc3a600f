// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/tasagare/core/permute"
	"github.com/toeirei/tasagare/core/seed"
	"github.com/toeirei/tasagare/internal/i18n"
	"github.com/toeirei/tasagare/internal/logging"
)

// granularity resolves --granularity, falling back to the configured
// default.
func (a *app) granularity(cmd *cobra.Command) (seed.Granularity, error) {
	name := a.cfg.Rearrange.Granularity
	if cmd.Flags().Changed("granularity") {
		name, _ = cmd.Flags().GetString("granularity")
	}
	g, ok := seed.ParseGranularity(name)
	if !ok {
		return seed.None, errors.New(i18n.T("config.invalid_granularity", name))
	}
	return g, nil
}

func newRearrangeCmd(a *app) *cobra.Command {
	var explicitSeed string
	cmd := &cobra.Command{
		Use:   "rearrange [text]",
		Short: i18n.T("rearrange.short"),
		Long: `Shuffles the characters of the text (or the first line of stdin).

With --seed the arrangement is fully reproducible and therefore predictable
to anyone who knows the seed. Otherwise the seed is generated, either bound
to a calendar bucket (--granularity day|week|month|year) or unique (none).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			var opts []permute.Option
			if cmd.Flags().Changed("seed") {
				logging.Debugf("rearranging with an explicit seed")
				opts = append(opts, permute.WithSeed(explicitSeed))
			} else {
				g, err := a.granularity(cmd)
				if err != nil {
					return err
				}
				logging.Debugf("rearranging with a %s seed", g)
				opts = append(opts, permute.WithGranularity(g))
			}

			fmt.Fprintln(cmd.OutOrStdout(), permute.Rearrange(text, opts...))
			return nil
		},
	}
	cmd.Flags().StringVar(&explicitSeed, "seed", "", "Use this seed verbatim (predictable)")
	cmd.Flags().StringP("granularity", "g", "", "Seed granularity: none, day, week, month or year")
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: i18n.T("seed.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.granularity(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seed.Generate(g))
			return nil
		},
	}
	cmd.Flags().StringP("granularity", "g", "", "Seed granularity: none, day, week, month or year")
	return cmd
}
