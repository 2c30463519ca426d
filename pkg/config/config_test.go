package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/extract"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Markers != extract.DefaultMarkers() {
		t.Errorf("markers = %+v", cfg.Markers)
	}
	opts := cfg.AnalysisOptions("/src")
	if opts.Root != "/src" || !opts.Policy.SkipTests || opts.SelfEdges {
		t.Errorf("AnalysisOptions() = %+v", opts)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[source]
exclude = ["**/generated/**"]
skip_tests = false

[markers]
autowired = "Inject"

[graph]
self_edges = true
disabled_extractors = ["inheritance"]

[render]
rankdir = "lr"
detailed = true
`)
	cfg, err := Load(path, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Markers.Autowired != "Inject" {
		t.Errorf("autowired = %q", cfg.Markers.Autowired)
	}
	// Untouched keys keep their defaults.
	if cfg.Markers.RequiredArgs != extract.DefaultMarkers().RequiredArgs {
		t.Errorf("required_args = %q", cfg.Markers.RequiredArgs)
	}
	if !slices.Equal(cfg.Source.Extensions, []string{".java"}) {
		t.Errorf("extensions = %v", cfg.Source.Extensions)
	}
	if cfg.Source.SkipTests || !cfg.Source.RespectGitignore {
		t.Errorf("source = %+v", cfg.Source)
	}

	opts := cfg.AnalysisOptions("/src")
	if !opts.SelfEdges || !slices.Equal(opts.DisabledExtractors, []string{"inheritance"}) {
		t.Errorf("AnalysisOptions() = %+v", opts)
	}
	ro := cfg.RenderOptions()
	if err := ro.Validate(); err != nil {
		t.Fatal(err)
	}
	if ro.RankDir != "LR" || !ro.Detailed {
		t.Errorf("RenderOptions() = %+v", ro)
	}
}

func TestLoadUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	path := writeConfig(t, t.TempDir(), "[graph]\nself_edge = true\n")
	if _, err := Load(path, log.New(&buf)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !strings.Contains(buf.String(), "graph.self_edge") {
		t.Errorf("expected warning naming the unknown key, got %q", buf.String())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	quiet := log.New(&bytes.Buffer{})

	tests := []struct {
		name    string
		content string
		want    errors.Code
	}{
		{"syntax", "[graph\n", errors.ErrCodeInvalidConfig},
		{"empty marker", "[markers]\nautowired = \"\"\n", errors.ErrCodeInvalidConfig},
		{"unknown extractor", "[graph]\ndisabled_extractors = [\"magic\"]\n", errors.ErrCodeInvalidConfig},
		{"bad rankdir", "[render]\nrankdir = \"diagonal\"\n", errors.ErrCodeInvalidConfig},
		{"no extensions", "[source]\nextensions = []\n", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, dir, tt.content)
			_, err := Load(path, quiet)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %s", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.toml"), quiet); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestResolve(t *testing.T) {
	quiet := log.New(&bytes.Buffer{})

	t.Run("no file", func(t *testing.T) {
		cfg, err := Resolve("", t.TempDir(), quiet)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Path != "" {
			t.Errorf("Path = %q, want defaults", cfg.Path)
		}
	})

	t.Run("file in root", func(t *testing.T) {
		root := t.TempDir()
		path := writeConfig(t, root, "[graph]\nstrict = true\n")
		cfg, err := Resolve("", root, quiet)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Path != path || !cfg.Graph.Strict {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("explicit missing", func(t *testing.T) {
		_, err := Resolve(filepath.Join(t.TempDir(), "nope.toml"), t.TempDir(), quiet)
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("Resolve() error = %v", err)
		}
	})
}
