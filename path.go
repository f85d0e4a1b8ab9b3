// Package douze provides configuration, paths and process execution for the
// DOuze build tasks.
package douze

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	gitRootOnce sync.Once
	gitRoot     string
	gitRootErr  error
)

// GitRoot returns the root directory of the git repository containing the
// current working directory.
func GitRoot() (string, error) {
	gitRootOnce.Do(func() {
		gitRoot, gitRootErr = findGitRoot()
	})
	return gitRoot, gitRootErr
}

func findGitRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findGitRootFrom(dir)
}

func findGitRootFrom(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// ProjectRoot returns the git root, or the current working directory when not
// inside a git checkout.
func ProjectRoot() string {
	if root, err := GitRoot(); err == nil {
		return root
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
