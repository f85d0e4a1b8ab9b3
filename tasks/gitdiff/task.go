// Package gitdiff provides a task that fails if there are uncommitted changes.
package gitdiff

import (
	"errors"

	"github.com/WithIO/DOuze"
	"github.com/goyek/goyek/v3"
)

// Task returns a goyek task that runs git diff --exit-code from the project
// root. Run it after format in CI to catch unformatted commits.
func Task(cfg douze.Config) *goyek.DefinedTask {
	cfg = cfg.WithDefaults()
	return goyek.Define(goyek.Task{
		Name:  "git-diff",
		Usage: "fail if there are uncommitted changes",
		Action: func(a *goyek.A) {
			err := douze.Exec(a, cfg.Root, []string{"git", "diff", "--exit-code"})
			var exitErr *douze.ExitError
			if errors.As(err, &exitErr) {
				a.Fatal("uncommitted changes detected; please commit or stage your changes")
			}
			if err != nil {
				a.Fatal(err)
			}
		},
	})
}
