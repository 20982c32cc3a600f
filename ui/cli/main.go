// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, loads configuration before any
// subcommand runs and resolves build information for `version`.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/tasagare/buildvars"
	"github.com/toeirei/tasagare/core/fingerprint"
	"github.com/toeirei/tasagare/internal/config"
	"github.com/toeirei/tasagare/internal/i18n"
	"github.com/toeirei/tasagare/internal/logging"
)

const modulePath = "github.com/toeirei/tasagare"

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// app carries the state shared by the commands of one root command.
type app struct {
	cfgFile         string
	verbose         bool
	showVersionFlag bool

	cfg       config.Config
	v         *viper.Viper
	finalizer *fingerprint.Finalizer
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	i18n.Init(os.Getenv("TASAGARE_LANGUAGE"))
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid silently running on defaults.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// setup loads configuration and prepares logging, messages and the
// Finalizer. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, a.v, err = config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if a.verbose {
		logging.SetDebug(true)
	} else if err := logging.SetLevel(a.cfg.Log.Level); err != nil {
		logging.Warnf("%v; keeping current level", err)
	}
	i18n.SetLang(a.cfg.Language)

	if used := a.v.ConfigFileUsed(); used != "" {
		logging.Debugf("using config file %s", used)
	}

	a.finalizer = fingerprint.New(a.cfg.Rearrange.Seed)
	if a.finalizer.UsesDefaultSeed() {
		logging.Debugf("%s", i18n.T("config.default_seed_warning"))
	}
	return nil
}

// warnDefaultSeed is emitted by commands whose output is meant to be stored.
func (a *app) warnDefaultSeed() {
	if a.finalizer.UsesDefaultSeed() {
		logging.Warnf("%s", i18n.T("config.default_seed_warning"))
	}
}

// NewRootCmd creates and configures a new root cobra command. Every call
// returns an independent command tree, which keeps tests isolated.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "tasagare",
		Short:         i18n.T("root.short"),
		Long:          i18n.T("root.long"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				return errVersionShown
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&a.showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String(config.KeyLanguage, "en", `Message language ("en", "de")`)
	cmd.PersistentFlags().String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newFingerprintCmd(a),
		newVerifyCmd(a),
		newRearrangeCmd(a),
		newSeedCmd(a),
		newConfigCmd(a),
		newDebugCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// errVersionShown stops execution after -V without reporting a failure.
var errVersionShown = errors.New("version shown")

// IsSilentExit reports whether err only signals an early, successful stop.
func IsSilentExit(err error) bool {
	return errors.Is(err, errVersionShown)
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("version.short"),
		// Printing the version must not depend on a readable config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our module as a dependency.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
