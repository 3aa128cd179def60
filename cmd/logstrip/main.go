// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the logstrip CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/logstrip/internal/history"
	"github.com/pdiddy/logstrip/internal/logging"
	"github.com/pdiddy/logstrip/internal/strip"
	"github.com/pdiddy/logstrip/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is populated from viper before any command runs.
var cfg types.Config

// rootCmd strips console.log lines from the fixed target list.
var rootCmd = &cobra.Command{
	Use:   "logstrip",
	Short: "Remove console.log statements from the client components",
	Long: `logstrip removes console.log(...) lines from a fixed list of JavaScript
files and collapses runs of blank lines, rewriting each file in place.

Matching is line based: a line is dropped when it starts with console.log(
or contains console.log( anywhere and is not a // comment. Targets are
resolved against the directory holding the executable unless --root is set.
Missing targets are reported and skipped.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
		logging.Setup(cfg.Log, os.Stderr)
		if used := viper.ConfigFileUsed(); used != "" {
			slog.Debug("using config file", "path", used)
		}
		return nil
	},
	RunE: runStrip,
}

func runStrip(cmd *cobra.Command, args []string) error {
	root, err := strip.ResolveRoot(cfg.Strip.Root)
	if err != nil {
		return err
	}
	slog.Debug("resolved root", "root", root)

	result, err := strip.ProcessBatch(root, strip.DefaultTargets, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if !cfg.History.Enabled {
		return nil
	}

	store, err := openHistory(root)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.Record(context.Background(), root, result)
	if err != nil {
		return err
	}
	slog.Info("run recorded", "run_id", runID, "total_removed", result.TotalRemoved)
	return nil
}

// openHistory opens the history store, defaulting its path under root.
func openHistory(root string) (*history.Store, error) {
	hc := cfg.History
	if hc.DBPath == "" {
		hc.DBPath = filepath.Join(root, history.DefaultDBPath)
	}
	return history.NewStore(hc)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./logstrip.yaml or ~/.config/logstrip/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("root", "", "base directory for the target files (default: executable directory)")
	rootCmd.Flags().Bool("history", false, "record this run in the history database")

	mustBindFlag("log.level", rootCmd.PersistentFlags(), "log-level")
	mustBindFlag("strip.root", rootCmd.PersistentFlags(), "root")
	mustBindFlag("history.enabled", rootCmd.Flags(), "history")

	viper.SetDefault("history.db_path", "")
}

// mustBindFlag binds the named flag to a viper key. It panics when the flag
// is not defined, so a mistyped name fails at startup.
func mustBindFlag(key string, flags *pflag.FlagSet, name string) {
	if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("binding flag %q to %q: %v", name, key, err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logstrip")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "logstrip"))
		}
	}

	viper.SetEnvPrefix("LOGSTRIP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "warning: could not read config file:", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
