package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/injectgraph/pkg/analysis"
	"github.com/matzehuels/injectgraph/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and default file names.
const appName = "injectgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// stdout receives command output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Analysis Flags
// =============================================================================

// analysisFlags are shared by every command that analyzes a source tree.
// Only flags the user actually set override the config file.
type analysisFlags struct {
	configPath   string
	exclude      []string
	includeTests bool
	noGitignore  bool
	disable      []string
	selfEdges    bool
	strict       bool
	workers      int
	quiet        bool
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "config file (default: <root>/"+config.FileName+" if present)")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "additional gitignore-style exclude patterns")
	fs.BoolVar(&f.includeTests, "include-tests", false, "analyze test sources too")
	fs.BoolVar(&f.noGitignore, "no-gitignore", false, "ignore .gitignore files")
	fs.StringSliceVar(&f.disable, "disable", nil, "extractors to disable (comma-separated)")
	fs.BoolVar(&f.selfEdges, "self-edges", false, "keep self-referencing dependencies (they form cycles)")
	fs.BoolVar(&f.strict, "strict", false, "skip files with syntax errors instead of analyzing the recovered tree")
	fs.IntVar(&f.workers, "workers", 0, "parallel parse workers (default: number of CPUs)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress the progress spinner")
}

// apply overrides cfg with the flags set on cmd.
func (f *analysisFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("exclude") {
		cfg.Source.Exclude = append(cfg.Source.Exclude, f.exclude...)
	}
	if changed("include-tests") {
		cfg.Source.SkipTests = !f.includeTests
	}
	if changed("no-gitignore") {
		cfg.Source.RespectGitignore = !f.noGitignore
	}
	if changed("disable") {
		cfg.Graph.DisabledExtractors = append(cfg.Graph.DisabledExtractors, f.disable...)
	}
	if changed("self-edges") {
		cfg.Graph.SelfEdges = f.selfEdges
	}
	if changed("strict") {
		cfg.Graph.Strict = f.strict
	}
	if changed("workers") {
		cfg.Graph.Workers = f.workers
	}
}

// loadConfig resolves the config for root and applies flag overrides.
func (c *CLI) loadConfig(cmd *cobra.Command, root string, f *analysisFlags) (*config.Config, error) {
	cfg, err := config.Resolve(f.configPath, root, c.Logger)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "file", cfg.Path)
	}
	f.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// analyze runs the full pipeline on root.
func (c *CLI) analyze(ctx context.Context, cfg *config.Config, root string, quiet bool) (*analysis.Result, error) {
	var spinner *Spinner
	if !quiet {
		spinner = newSpinnerWithContext(ctx, "Analyzing "+root)
		spinner.Start()
	}
	res, err := analysis.NewRunner(c.Logger).Run(ctx, cfg.AnalysisOptions(root))
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		printCycles(err)
		return nil, err
	}
	return res, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}
