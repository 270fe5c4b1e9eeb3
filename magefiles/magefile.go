//go:build mage

// Package main contains Mage build targets for bookshelf.
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
	binName = "bookshelf"
	cmdPkg  = "./cmd/bookshelf"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// E2E runs the PTY-driven end-to-end tests against a fresh binary.
func E2E() error {
	return sh.RunV("go", "test", "-tags", "e2e", "-count=1", "./e2e/...")
}

// Lint runs go vet and, when installed, golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if _, err := sh.Output("golangci-lint", "version"); err != nil {
		fmt.Println("golangci-lint not installed, skipping")
		return nil
	}
	return sh.RunV("golangci-lint", "run")
}

// All runs lint, unit tests and the end-to-end suite.
func All() {
	mg.SerialDeps(Lint, Test, E2E)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
