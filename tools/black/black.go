// Package black provides black (Python code formatter) tool integration.
package black

import (
	"regexp"
	"strings"

	"github.com/WithIO/DOuze"
	"github.com/goyek/goyek/v3"
)

// Name is the binary name for black.
const Name = "black"

// ExcludePattern renders directory names as the regex black expects for
// --exclude, e.g. /(\.git|dist)/.
func ExcludePattern(dirs []string) string {
	quoted := make([]string, len(dirs))
	for i, d := range dirs {
		quoted[i] = regexp.QuoteMeta(d)
	}
	return "/(" + strings.Join(quoted, "|") + ")/"
}

// Args returns the black arguments for the whole tree.
// With check set, files are left untouched and a diff is printed instead.
func Args(cfg douze.PythonConfig, check bool) []string {
	args := []string{"--target-version", cfg.TargetVersion}
	if len(cfg.Exclude) > 0 {
		args = append(args, "--exclude", ExcludePattern(cfg.Exclude))
	}
	if check {
		args = append(args, "--check", "--diff")
	}
	return append(args, ".")
}

// Run formats the tree rooted at root.
func Run(a *goyek.A, cfg douze.PythonConfig, root string) error {
	return run(a, cfg, root, false)
}

// Check verifies the tree rooted at root is formatted.
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
