package douze

import (
	"fmt"

	"github.com/google/shlex"
)

// Environment variables that override the configuration.
const (
	// EnvPythonBin overrides PythonConfig.Bin.
	EnvPythonBin = "PYTHON_BIN"
	// EnvRegistry overrides PublishConfig.Registry.
	EnvRegistry = "ENV"
)

// Defaults.
const (
	DefaultPythonBin     = "poetry run"
	DefaultTargetVersion = "py38"
	DefaultPublishBin    = "poetry"
	DefaultRegistry      = "pypitest"
	DefaultShimName      = "douze"
)

// DefaultExclude lists the directories black never touches: version control,
// caches, build/dist output and bundler output.
var DefaultExclude = []string{
	".git",
	".hg",
	".mypy_cache",
	".tox",
	".venv",
	"_build",
	"buck-out",
	"build",
	"dist",
	"node_modules",
	"webpack_bundles",
}

// DefaultSortDirs lists the directories isort runs against.
var DefaultSortDirs = []string{"src"}

// Config defines the build configuration for the project.
type Config struct {
	// Root is the directory every tool runs from.
	// Default: the git root, or the working directory outside of git.
	Root string `yaml:"root"`

	// Python configures the black and isort tasks.
	Python *PythonConfig `yaml:"python"`

	// Publish configures the publish task.
	Publish *PublishConfig `yaml:"publish"`

	// Shim controls the wrapper script written by the shim task.
	Shim *ShimConfig `yaml:"shim"`
}

// ShimConfig controls wrapper script generation.
type ShimConfig struct {
	// Name is the script file name at the project root. Default: "douze".
	Name string `yaml:"name"`
	// Verbose makes the script run tasks with -v.
	Verbose bool `yaml:"verbose"`
}

// PythonConfig configures how the Python formatting tools are invoked.
type PythonConfig struct {
	// Bin is the runner prefix placed in front of every tool,
	// split into words like a shell would.
	// Default: "poetry run". An all-blank value runs the tools directly.
	Bin string `yaml:"bin"`

	// TargetVersion is passed to black as --target-version.
	TargetVersion string `yaml:"target_version"`

	// Exclude lists directory names black must skip.
	Exclude []string `yaml:"exclude"`

	// SortDirs lists directories isort sorts imports in.
	SortDirs []string `yaml:"sort_dirs"`
}

// PublishConfig configures package publishing.
type PublishConfig struct {
	// Bin is the publisher binary. Default: "poetry".
	Bin string `yaml:"bin"`

	// Registry is the alias of the package index to upload to.
	Registry string `yaml:"registry"`
}

// WithDefaults returns a copy of the config with default values applied.
// Nested configs are copied, so the receiver is never mutated.
func (c Config) WithDefaults() Config {
	if c.Root == "" {
		c.Root = ProjectRoot()
	}

	py := PythonConfig{}
	if c.Python != nil {
		py = *c.Python
	}
	if py.Bin == "" {
		py.Bin = DefaultPythonBin
	}
	if py.TargetVersion == "" {
		py.TargetVersion = DefaultTargetVersion
	}
	if len(py.Exclude) == 0 {
		py.Exclude = DefaultExclude
	}
	if len(py.SortDirs) == 0 {
		py.SortDirs = DefaultSortDirs
	}
	c.Python = &py

	pub := PublishConfig{}
	if c.Publish != nil {
		pub = *c.Publish
	}
	if pub.Bin == "" {
		pub.Bin = DefaultPublishBin
	}
	if pub.Registry == "" {
		pub.Registry = DefaultRegistry
	}
	c.Publish = &pub

	shim := ShimConfig{}
	if c.Shim != nil {
		shim = *c.Shim
	}
	if shim.Name == "" {
		shim.Name = DefaultShimName
	}
	c.Shim = &shim

	return c
}

// FromEnv returns a copy of the config with environment overrides applied.
// lookup is typically os.LookupEnv. Empty values count as unset.
func (c Config) FromEnv(lookup func(string) (string, bool)) Config {
	if v, ok := lookup(EnvPythonBin); ok && v != "" {
		py := PythonConfig{}
		if c.Python != nil {
			py = *c.Python
		}
		py.Bin = v
		c.Python = &py
	}
	if v, ok := lookup(EnvRegistry); ok && v != "" {
		pub := PublishConfig{}
		if c.Publish != nil {
			pub = *c.Publish
		}
		pub.Registry = v
		c.Publish = &pub
	}
	return c
}

// Runner returns the runner prefix split into words.
// The result is empty when Bin only contains blanks.
func (p PythonConfig) Runner() ([]string, error) {
	words, err := shlex.Split(p.Bin)
	if err != nil {
		return nil, fmt.Errorf("parse %s %q: %w", EnvPythonBin, p.Bin, err)
	}
	return words, nil
}

// Argv returns the full command line for running tool through the runner.
func (p PythonConfig) Argv(tool string, args ...string) ([]string, error) {
	runner, err := p.Runner()
	if err != nil {
		return nil, err
	}
	argv := make([]string, 0, len(runner)+1+len(args))
	argv = append(argv, runner...)
	argv = append(argv, tool)
	return append(argv, args...), nil
}
