//go:build mage

// Package main contains Mage build targets for graphpoet developer tooling.
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
	binName = "graphpoet"
	cmdPkg  = "./cmd/graphpoet"
)

// Default target when mage is run without arguments.
var Default = Build

// Build compiles the CLI binary into bin/.
func Build() error {
	mg.Deps(Vet)
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

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs the benchmarks without unit tests.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", "./wordgraph/...", "./poet/...")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
