//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const binDir = "bin"

type Build mg.Namespace

// Builds the CLI renderer into bin/raytracer.
func (Build) Cli() error {
	_, err := executeCmd("go", withArgs("build", "-o", filepath.Join(binDir, "raytracer"), "."), withStream())
	return err
}

// Builds the web server into bin/raytracer-web.
func (Build) Web() error {
	_, err := executeCmd("go", withArgs("build", "-o", filepath.Join(binDir, "raytracer-web"), "./web"), withStream())
	return err
}

// Builds every binary.
func (Build) All() {
	mg.Deps(Build.Cli, Build.Web)
}

// Runs go vet and the short test suite.
func Test() error {
	if _, err := executeCmd("go", withArgs("vet", "./...")); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("test", "-short", "./..."), withStream())
	return err
}

// Runs the full test suite including the slow render comparisons.
func TestAll() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Removes build and render output.
func Clean() error {
	for _, dir := range []string{binDir, "output"} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return nil
}
