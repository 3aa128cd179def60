//go:build mage

// Package main contains Mage build targets for logstrip developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "logstrip"
	cmdPkg  = "./cmd/logstrip"
)

// Build compiles the CLI binary into bin/. Copy the binary next to the
// client/ directory to strip it in place, or pass --root.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + buildVersion()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Strip builds the CLI and runs it against the current directory,
// recording the run in the history database.
func Strip() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "--root", ".", "--history")
}

// History prints the recorded runs for the current directory.
func History() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "history", "list", "--root", ".")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// buildVersion returns the short git commit, or "dev" outside a checkout.
func buildVersion() string {
	rev, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || rev == "" {
		return "dev"
	}
	return rev
}
