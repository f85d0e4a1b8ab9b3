// Package python provides the Python formatting tasks.
package python

import (
	"github.com/WithIO/DOuze"
	"github.com/WithIO/DOuze/tools/black"
	"github.com/WithIO/DOuze/tools/isort"
	"github.com/goyek/goyek/v3"
)

// Tasks holds the goyek tasks for Python formatting.
type Tasks struct {
	config douze.Config

	// Format sorts imports, then formats code.
	Format *goyek.DefinedTask

	// Black formats code using black.
	Black *goyek.DefinedTask

	// Isort sorts imports using isort.
	Isort *goyek.DefinedTask

	// Check verifies imports and formatting without rewriting files.
	Check *goyek.DefinedTask

	// BlackCheck and IsortCheck are the steps of Check.
	BlackCheck *goyek.DefinedTask
	IsortCheck *goyek.DefinedTask
}

// NewTasks creates Python tasks for the given config.
func NewTasks(cfg douze.Config) *Tasks {
	cfg = cfg.WithDefaults()
	t := &Tasks{config: cfg}

	t.Isort = goyek.Define(goyek.Task{
		Name:  "isort",
		Usage: "sort imports using isort",
		Action: func(a *goyek.A) {
			if err := isort.Run(a, *cfg.Python, cfg.Root); err != nil {
				a.Fatal(err)
			}
		},
	})

	t.Black = goyek.Define(goyek.Task{
		Name:  "black",
		Usage: "format Python code using black",
		Action: func(a *goyek.A) {
			if err := black.Run(a, *cfg.Python, cfg.Root); err != nil {
				a.Fatal(err)
			}
		},
	})

	// Deps run in order and the flow stops at the first failure,
	// so black never runs after a failed isort.
	t.Format = goyek.Define(goyek.Task{
		Name:  "format",
		Usage: "sort imports, then format code (isort, black)",
		Deps:  goyek.Deps{t.Isort, t.Black},
	})

	t.IsortCheck = goyek.Define(goyek.Task{
		Name:  "isort-check",
		Usage: "check imports are sorted",
		Action: func(a *goyek.A) {
			if err := isort.Check(a, *cfg.Python, cfg.Root); err != nil {
				a.Fatal(err)
			}
		},
	})

	t.BlackCheck = goyek.Define(goyek.Task{
		Name:  "black-check",
		Usage: "check code is formatted",
		Action: func(a *goyek.A) {
			if err := black.Check(a, *cfg.Python, cfg.Root); err != nil {
				a.Fatal(err)
			}
		},
	})

	t.Check = goyek.Define(goyek.Task{
		Name:  "check",
		Usage: "check imports and formatting without rewriting files",
		Deps:  goyek.Deps{t.IsortCheck, t.BlackCheck},
	})

	return t
}
