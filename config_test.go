package douze

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	got := Config{Root: "/project"}.WithDefaults()

	if got.Python.Bin != "poetry run" {
		t.Errorf("Python.Bin = %q, want %q", got.Python.Bin, "poetry run")
	}
	if got.Python.TargetVersion != "py38" {
		t.Errorf("Python.TargetVersion = %q, want %q", got.Python.TargetVersion, "py38")
	}
	if diff := cmp.Diff(DefaultExclude, got.Python.Exclude); diff != "" {
		t.Errorf("Python.Exclude mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"src"}, got.Python.SortDirs); diff != "" {
		t.Errorf("Python.SortDirs mismatch (-want +got):\n%s", diff)
	}
	if got.Publish.Bin != "poetry" {
		t.Errorf("Publish.Bin = %q, want %q", got.Publish.Bin, "poetry")
	}
	if got.Publish.Registry != "pypitest" {
		t.Errorf("Publish.Registry = %q, want %q", got.Publish.Registry, "pypitest")
	}
}

func TestConfig_WithDefaults_PreservesValues(t *testing.T) {
	t.Parallel()

	in := Config{
		Root:    "/project",
		Python:  &PythonConfig{Bin: "pipenv run", TargetVersion: "py311", SortDirs: []string{"lib"}},
		Publish: &PublishConfig{Registry: "internal"},
	}
	got := in.WithDefaults()

	if got.Python.Bin != "pipenv run" || got.Python.TargetVersion != "py311" {
		t.Errorf("Python = %+v, want configured values kept", got.Python)
	}
	if diff := cmp.Diff([]string{"lib"}, got.Python.SortDirs); diff != "" {
		t.Errorf("Python.SortDirs mismatch (-want +got):\n%s", diff)
	}
	if got.Publish.Registry != "internal" {
		t.Errorf("Publish.Registry = %q, want %q", got.Publish.Registry, "internal")
	}
	if in.Publish.Bin != "" {
		t.Error("WithDefaults mutated the receiver's Publish config")
	}
}

func TestConfig_FromEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		env          map[string]string
		wantBin      string
		wantRegistry string
	}{
		{
			name:         "unset uses defaults",
			env:          map[string]string{},
			wantBin:      DefaultPythonBin,
			wantRegistry: DefaultRegistry,
		},
		{
			name:         "empty counts as unset",
			env:          map[string]string{EnvPythonBin: "", EnvRegistry: ""},
			wantBin:      DefaultPythonBin,
			wantRegistry: DefaultRegistry,
		},
		{
			name:         "overrides",
			env:          map[string]string{EnvPythonBin: "python -m", EnvRegistry: "pypi"},
			wantBin:      "python -m",
			wantRegistry: "pypi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Config{Root: "/project"}.FromEnv(lookupFrom(tt.env)).WithDefaults()
			if got.Python.Bin != tt.wantBin {
				t.Errorf("Python.Bin = %q, want %q", got.Python.Bin, tt.wantBin)
			}
			if got.Publish.Registry != tt.wantRegistry {
				t.Errorf("Publish.Registry = %q, want %q", got.Publish.Registry, tt.wantRegistry)
			}
		})
	}
}

func TestPythonConfig_Argv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bin     string
		want    []string
		wantErr bool
	}{
		{name: "default runner", bin: "poetry run", want: []string{"poetry", "run", "black", "."}},
		{name: "quoted path", bin: `'/opt/my tools/py' -m`, want: []string{"/opt/my tools/py", "-m", "black", "."}},
		{name: "blank runs tool directly", bin: "  ", want: []string{"black", "."}},
		{name: "unbalanced quote", bin: `"poetry run`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := PythonConfig{Bin: tt.bin}.Argv("black", ".")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Argv() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Argv() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Argv() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
