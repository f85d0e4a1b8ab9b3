// Package shim generates the wrapper script that gives the build tasks a
// short entry point at the project root.
package shim

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed douze.sh.tmpl
var shimTemplate string

// DefaultName is the file name of the generated script.
const DefaultName = "douze"

// Cmd is the main package the script runs, relative to the project root.
const Cmd = "cmd/douze-tasks"

type shimData struct {
	Name      string
	GoVersion string
	Cmd       string
	Flags     string
}

// Options controls script generation.
type Options struct {
	// Name of the script. Default: DefaultName.
	Name string
	// Verbose makes the script pass -v to the task runner.
	Verbose bool
}

// Generate writes the wrapper script at rootDir and returns its path.
// The Go version is read from rootDir/go.mod.
func Generate(rootDir string, opts Options) (string, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}

	goVersion, err := extractGoVersionFromDir(rootDir)
	if err != nil {
		return "", fmt.Errorf("reading Go version: %w", err)
	}

	tmpl, err := template.New("shim").Parse(shimTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing shim template: %w", err)
	}

	data := shimData{
		Name:      opts.Name,
		GoVersion: goVersion,
		Cmd:       Cmd,
	}
	if opts.Verbose {
		data.Flags = "-v "
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing shim template: %w", err)
	}

	path := filepath.Join(rootDir, opts.Name)
	if err := os.WriteFile(path, buf.Bytes(), 0o755); err != nil {
		return "", fmt.Errorf("writing shim: %w", err)
	}
	return path, nil
}

// extractGoVersionFromDir returns the version of the "go" directive in
// dir/go.mod.
func extractGoVersionFromDir(dir string) (string, error) {
	gomodPath := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(gomodPath)
	if err != nil {
		return "", fmt.Errorf("read go.mod: %w", err)
	}

	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "go "); ok {
			return strings.TrimSpace(after), nil
		}
	}

	return "", fmt.Errorf("no go directive in %s", gomodPath)
}
