//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "locconv"
	mainPkg    = "./cmd/locconv"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the locconv binary into the working directory
func Build() error {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}

	ldflags := fmt.Sprintf("-X codeberg.org/snonux/locconv/internal.Version=%s", version)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binaryName, mainPkg)
}

// Test runs the test suite with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet over all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	return sh.Copy(filepath.Join(home, "go", "bin", binaryName), binaryName)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binaryName)
}
