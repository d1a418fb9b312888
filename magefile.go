//go:build mage

package main

import (
	"fmt"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the lsg binary
func Build() error {
	ldflags, err := buildLdflags()
	if err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binaryName(), "./cmd/lsg")
}

// Test runs the test suite with race detection
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and gofmt checks
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("files need formatting:\n%s", out)
	}
	return nil
}

// QA runs lint, tests and a full build
func QA() error {
	mg.SerialDeps(Lint, Test, Build)
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binaryName())
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "lsg.exe"
	}
	return "lsg"
}

func buildLdflags() (string, error) {
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	date, err := sh.Output("date", "-u", "+%Y-%m-%dT%H:%M:%SZ")
	if err != nil {
		date = "unknown"
	}
	return fmt.Sprintf(
		"-X github.com/dkoosis/lsg/internal/version.CommitHash=%s -X github.com/dkoosis/lsg/internal/version.BuildDate=%s",
		commit, date,
	), nil
}
