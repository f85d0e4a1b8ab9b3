// Package publish provides the task that builds and uploads the package.
package publish

import (
	"github.com/WithIO/DOuze"
	"github.com/WithIO/DOuze/tools/poetry"
	"github.com/fatih/color"
	"github.com/goyek/goyek/v3"
)

// productionRegistry is the poetry alias of the real package index.
const productionRegistry = "pypi"

var (
	notice  = color.New(color.FgCyan).FprintfFunc()
	warning = color.New(color.FgHiMagenta, color.Bold).FprintfFunc()
)

// Task returns a goyek task that builds the package and uploads it to the
// configured registry.
func Task(cfg douze.Config) *goyek.DefinedTask {
	cfg = cfg.WithDefaults()
	return goyek.Define(goyek.Task{
		Name:  "publish",
		Usage: "build the package and upload it (registry from $" + douze.EnvRegistry + ", default " + douze.DefaultRegistry + ")",
		Action: func(a *goyek.A) {
			registry := cfg.Publish.Registry
			if registry == productionRegistry {
				warning(a.Output(), "Publishing to the production index (%s)\n", registry)
			} else {
				notice(a.Output(), "Publishing to %s\n", registry)
			}
			if err := poetry.Publish(a, *cfg.Publish, cfg.Root); err != nil {
				a.Fatal(err)
			}
		},
	})
}
