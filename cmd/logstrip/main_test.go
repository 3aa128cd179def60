// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/logstrip/internal/history"
	"github.com/pdiddy/logstrip/internal/strip"
)

// execute runs the root command with args and returns its stdout.
// Flags keep their values between calls, so tests set every flag they rely on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_StripAndHistory(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, strip.DefaultTargets[0])
	require.NoError(t, os.MkdirAll(filepath.Dir(first), 0o755))
	require.NoError(t, os.WriteFile(first, []byte("console.log(1);\nx = 1;\n"), 0o644))

	out, err := execute(t, "--root", root, "--history=true", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Processing: "+first)
	assert.Contains(t, out, "File not found: "+filepath.Join(root, strip.DefaultTargets[1]))
	assert.Contains(t, out, "Total removed lines: 1")
	assert.Contains(t, out, "Done!")

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "x = 1;\n", string(data))

	assert.FileExists(t, filepath.Join(root, history.DefaultDBPath))

	out, err = execute(t, "history", "list", "--root", root, "--limit", "5", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 (processed 1, skipped 2)")
	assert.Contains(t, out, "1 runs")

	exportPath := filepath.Join(t.TempDir(), "runs.yaml")
	out, err = execute(t, "history", "export", "--root", root, "--out", exportPath, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to "+exportPath)

	e, err := history.ReadExport(exportPath)
	require.NoError(t, err)
	require.Len(t, e.Runs, 1)
	assert.Len(t, e.Runs[0].Files, len(strip.DefaultTargets))
}

func TestRootCommand_NoHistoryByDefault(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "--root", root, "--history=false", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Total removed lines: 0")
	assert.NoFileExists(t, filepath.Join(root, history.DefaultDBPath))
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, err := execute(t, "--root", t.TempDir(), "--history=false", "extra.js")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "logstrip dev\n", out)
}

func TestRootCommand_FlagsBoundToConfigKeys(t *testing.T) {
	root := t.TempDir()

	_, err := execute(t, "--root", root, "--history=false", "--log-level", "warn")
	require.NoError(t, err)

	assert.Equal(t, root, viper.GetString("strip.root"))
	assert.Equal(t, "warn", viper.GetString("log.level"))
	assert.False(t, viper.GetBool("history.enabled"))
	assert.Equal(t, root, cfg.Strip.Root)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestMustBindFlag_UnknownFlagPanics(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("known", "", "")

	assert.NotPanics(t, func() { mustBindFlag("test.known", flags, "known") })
	assert.Panics(t, func() { mustBindFlag("test.missing", flags, "missing") })
}
