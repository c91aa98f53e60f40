//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Render mg.Namespace

// Renders every builtin and bundled scene with the preview preset.
func (Render) Preview() error {
	for _, name := range []string{"default", "refraction", "cubes", "glass-cube", "mirror-hall"} {
		if err := renderScene(name, "preview"); err != nil {
			return err
		}
	}
	return nil
}

// Renders one scene at full quality. Usage: mage render:scene <name>
func (Render) Scene(name string) error {
	return renderScene(name, "slow")
}

// Starts the web server on port 8080.
func Web() error {
	mg.Deps(Build.Web)
	fmt.Println("Serving on http://localhost:8080")
	_, err := executeCmd("go", withArgs("run", "./web", "-port", "8080"), withStream())
	return err
}

func renderScene(name, preset string) error {
	_, err := executeCmd("go", withArgs("run", ".", "-scene", name, "-preset", preset), withStream())
	return err
}
