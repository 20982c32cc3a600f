// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/tasagare/internal/config"
	"github.com/toeirei/tasagare/internal/i18n"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: i18n.T("config.short"),
	}

	show := &cobra.Command{
		Use:   "show",
		Short: i18n.T("config.show.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "# file: %s\n", used)
			} else {
				fmt.Fprintln(out, "# file: (none, defaults and environment only)")
			}
			if a.finalizer.UsesDefaultSeed() {
				fmt.Fprintf(out, "# %s\n", i18n.T("config.default_seed_warning"))
			}
			redacted := a.cfg.Redacted()
			data, err := yaml.Marshal(&redacted)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	var path string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: i18n.T("config.init.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				p, err := config.GetConfigPath(false)
				if err != nil {
					return err
				}
				target = p
			}
			if _, err := os.Stat(target); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", target)
			}
			c := config.Default()
			written, err := config.WriteConfigFile(&c, target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", written))
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "Write to this file instead of the user config path")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	cmd.AddCommand(show, initCmd)
	return cmd
}

func newDebugCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: i18n.T("debug.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- TASAGARE DEBUG ---")
			fmt.Fprintf(out, "Config file used: %s\n", a.v.ConfigFileUsed())

			settings := a.v.AllSettings()
			if r, ok := settings["rearrange"].(map[string]any); ok {
				if s, _ := r["seed"].(string); s != "" {
					r["seed"] = "[SECRET]"
				}
			}
			b, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("could not marshal settings: %w", err)
			}
			fmt.Fprintln(out, "-- settings --")
			fmt.Fprintln(out, string(b))

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintf(out, "-- environment (TASAGARE_*, %s) --\n", config.LegacySeedEnv)
			var env []string
			for _, e := range os.Environ() {
				name, value, _ := strings.Cut(e, "=")
				if !strings.HasPrefix(name, "TASAGARE_") && name != config.LegacySeedEnv {
					continue
				}
				if strings.HasSuffix(name, "SEED") && value != "" {
					value = "[SECRET]"
				}
				env = append(env, name+"="+value)
			}
			sort.Strings(env)
			for _, e := range env {
				fmt.Fprintln(out, e)
			}
			fmt.Fprintln(out, "--- END DEBUG ---")
			return nil
		},
	}
}
