// Package tasks provides the unified task entry point.
// It creates every task based on the provided Config.
package tasks

import (
	"github.com/WithIO/DOuze"
	"github.com/WithIO/DOuze/internal/shim"
	"github.com/WithIO/DOuze/tasks/gitdiff"
	"github.com/WithIO/DOuze/tasks/publish"
	"github.com/WithIO/DOuze/tasks/python"
	"github.com/goyek/goyek/v3"
)

// Tasks holds all registered tasks.
type Tasks struct {
	// Python holds the formatting tasks.
	Python *python.Tasks

	// Format is the composite formatting task, and the default task.
	Format *goyek.DefinedTask

	// Publish builds and uploads the package.
	Publish *goyek.DefinedTask

	// GitDiff fails on uncommitted changes.
	GitDiff *goyek.DefinedTask

	// Shim writes the wrapper script at the project root.
	// It is not a dependency of any other task.
	Shim *goyek.DefinedTask
}

// New creates tasks based on the provided Config.
func New(cfg douze.Config) *Tasks {
	cfg = cfg.WithDefaults()
	t := &Tasks{
		Python:  python.NewTasks(cfg),
		Publish: publish.Task(cfg),
		GitDiff: gitdiff.Task(cfg),
	}
	t.Format = t.Python.Format

	t.Shim = goyek.Define(goyek.Task{
		Name:  "shim",
		Usage: "generate the ./" + cfg.Shim.Name + " wrapper script",
		Action: func(a *goyek.A) {
			path, err := shim.Generate(cfg.Root, shim.Options{
				Name:    cfg.Shim.Name,
				Verbose: cfg.Shim.Verbose,
			})
			if err != nil {
				a.Fatal(err)
			}
			a.Logf("Generated %s", path)
		},
	})

	return t
}

// Undefine removes every task created by New from the goyek registry.
func (t *Tasks) Undefine() {
	for _, dt := range t.defined() {
		if dt != nil {
			goyek.Undefine(dt)
		}
	}
}

func (t *Tasks) defined() []*goyek.DefinedTask {
	var all []*goyek.DefinedTask
	if p := t.Python; p != nil {
		all = append(all, p.Format, p.Black, p.Isort, p.Check, p.BlackCheck, p.IsortCheck)
	}
	return append(all, t.Publish, t.GitDiff, t.Shim)
}
