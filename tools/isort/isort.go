// Package isort provides isort (Python import sorter) tool integration.
package isort

import (
	"github.com/WithIO/DOuze"
	"github.com/goyek/goyek/v3"
)

// Name is the binary name for isort.
const Name = "isort"

// Args returns the isort arguments for the configured source directories.
func Args(cfg douze.PythonConfig, check bool) []string {
	var args []string
	if check {
		args = append(args, "--check-only", "--diff")
	}
	return append(args, cfg.SortDirs...)
}

// Run sorts imports in place.
func Run(a *goyek.A, cfg douze.PythonConfig, root string) error {
	return run(a, cfg, root, false)
}

// Check verifies imports are sorted without rewriting files.
func Check(a *goyek.A, cfg douze.PythonConfig, root string) error {
	return run(a, cfg, root, true)
}

func run(a *goyek.A, cfg douze.PythonConfig, root string, check bool) error {
	argv, err := cfg.Argv(Name, Args(cfg, check)...)
	if err != nil {
		return err
	}
	return douze.Exec(a, root, argv)
}
