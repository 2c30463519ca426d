// Package config loads the optional injectgraph.toml configuration file.
//
// Every key is optional; missing keys keep their defaults:
//
//	[source]
//	extensions = [".java"]
//	exclude = ["**/generated/**"]
//	skip_tests = true
//	respect_gitignore = true
//
//	[markers]
//	required_args = "RequiredArgsConstructor"
//	autowired = "Autowired"
//	repository_suffix = "Repository"
//
//	[graph]
//	self_edges = false
//	strict = false
//	disabled_extractors = ["inheritance"]
//
//	[render]
//	rankdir = "TB"
//	bgcolor = "transparent"
//	detailed = false
//
// Unknown keys are logged and ignored.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/injectgraph/pkg/analysis"
	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/extract"
	"github.com/matzehuels/injectgraph/pkg/render/nodelink"
	"github.com/matzehuels/injectgraph/pkg/source"
)

// FileName is the config file looked up inside the analyzed root.
const FileName = "injectgraph.toml"

// Config mirrors the TOML file.
type Config struct {
	Source  Source          `toml:"source"`
	Markers extract.Markers `toml:"markers"`
	Graph   Graph           `toml:"graph"`
	Render  Render          `toml:"render"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-"`
}

type Source struct {
	Extensions       []string `toml:"extensions"`
	Exclude          []string `toml:"exclude"`
	SkipTests        bool     `toml:"skip_tests"`
	RespectGitignore bool     `toml:"respect_gitignore"`
}

type Graph struct {
	SelfEdges          bool     `toml:"self_edges"`
	Strict             bool     `toml:"strict"`
	Workers            int      `toml:"workers"`
	DisabledExtractors []string `toml:"disabled_extractors"`
}

type Render struct {
	RankDir  string `toml:"rankdir"`
	BgColor  string `toml:"bgcolor"`
	Label    string `toml:"label"`
	Detailed bool   `toml:"detailed"`
	SameRank bool   `toml:"same_rank"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := source.DefaultPolicy()
	return &Config{
		Source: Source{
			Extensions:       p.Extensions,
			Exclude:          p.Exclude,
			SkipTests:        p.SkipTests,
			RespectGitignore: p.RespectGitignore,
		},
		Markers: extract.DefaultMarkers(),
		Render: Render{
			RankDir: "TB",
			BgColor: "transparent",
			Label:   nodelink.LabelShort,
		},
	}
}

// Load decodes the file at path over the defaults.
// A nil logger uses log.Default().
func Load(path string, logger *log.Logger) (*Config, error) {
	if logger == nil {
		logger = log.Default()
	}
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("ignoring unknown config keys", "file", path, "keys", strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads explicit when set. Otherwise it loads FileName from root
// if present, falling back to [Default].
func Resolve(explicit, root string, logger *log.Logger) (*Config, error) {
	if explicit != "" {
		return Load(explicit, logger)
	}
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err == nil {
		return Load(path, logger)
	}
	return Default(), nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "source")
	}
	if err := c.Markers.Validate(); err != nil {
		return err
	}
	if err := extract.ValidateNames(c.Graph.DisabledExtractors); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "graph.disabled_extractors")
	}
	if c.Graph.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "graph.workers must not be negative")
	}
	ro := c.RenderOptions()
	if err := ro.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render")
	}
	return nil
}

// Policy returns the source selection policy.
func (c *Config) Policy() source.Policy {
	return source.Policy{
		Extensions:       c.Source.Extensions,
		Exclude:          c.Source.Exclude,
		SkipTests:        c.Source.SkipTests,
		RespectGitignore: c.Source.RespectGitignore,
	}
}

// AnalysisOptions returns run options for root.
func (c *Config) AnalysisOptions(root string) analysis.Options {
	return analysis.Options{
		Root:               root,
		Policy:             c.Policy(),
		Markers:            c.Markers,
		DisabledExtractors: c.Graph.DisabledExtractors,
		SelfEdges:          c.Graph.SelfEdges,
		Strict:             c.Graph.Strict,
		Workers:            c.Graph.Workers,
	}
}

// RenderOptions returns DOT options.
func (c *Config) RenderOptions() nodelink.Options {
	return nodelink.Options{
		RankDir:  c.Render.RankDir,
		BgColor:  c.Render.BgColor,
		Label:    c.Render.Label,
		Detailed: c.Render.Detailed,
		SameRank: c.Render.SameRank,
	}
}
