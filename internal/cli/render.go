package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/io"
	"github.com/matzehuels/injectgraph/pkg/render/nodelink"
)

const (
	formatDOT  = "dot"
	formatSVG  = nodelink.FormatSVG
	formatPNG  = nodelink.FormatPNG
	formatJSON = "json"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true, formatJSON: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	analysisFlags
	output   string   // output file path (or base path for multiple outputs)
	formats  []string // output formats: "dot", "svg", "png", "json"
	rankDir  string
	bgColor  string
	label    string
	detailed bool
	sameRank bool
}

// renderCommand creates the render command for generating visualizations.
// The argument is either a source root or a graph previously written with
// analyze --json.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <root|graph.json>",
		Short: "Render the dependency graph as DOT, SVG or PNG",
		Example: `  injectgraph render ./src -f svg -o deps.svg
  injectgraph render ./src -f dot,svg,png -o out/deps
  injectgraph render graph.json --rankdir LR --label full`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.rankDir, "rankdir", "", "layout direction: TB, BT, LR, RL")
	cmd.Flags().StringVar(&opts.bgColor, "bgcolor", "", "background color")
	cmd.Flags().StringVar(&opts.label, "label", "", "node labels: short or full (with source path)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show rank, layer and metadata in node labels")
	cmd.Flags().BoolVar(&opts.sameRank, "same-rank", false, "align each layer on one Graphviz rank")

	return cmd
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'dot', 'svg', 'png', or 'json')", f)
		}
	}
	return nil
}

// basePath derives the base output path. If output is empty it is derived
// from input; a known format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		input = strings.TrimRight(input, `/\`)
		if input == "" || input == "." {
			return "graph"
		}
		return filepath.Base(strings.TrimSuffix(input, filepath.Ext(input)))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file for format. A single format with an explicit
// output is written to output as given.
func outputPath(output, input, format string, single bool) string {
	if single && output != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, cfgRender, err := c.loadGraph(cmd, input, &opts.analysisFlags)
	if err != nil {
		return err
	}

	ro := cfgRender
	flags := cmd.Flags()
	if flags.Changed("rankdir") {
		ro.RankDir = opts.rankDir
	}
	if flags.Changed("bgcolor") {
		ro.BgColor = opts.bgColor
	}
	if flags.Changed("label") {
		ro.Label = opts.label
	}
	if flags.Changed("detailed") {
		ro.Detailed = opts.detailed
	}
	if flags.Changed("same-rank") {
		ro.SameRank = opts.sameRank
	}
	if err := ro.Validate(); err != nil {
		return err
	}

	prog := newProgress(logger)
	dot := nodelink.ToDOT(g, ro)
	single := len(opts.formats) == 1
	for _, format := range opts.formats {
		data, err := renderFormat(ctx, g, dot, format)
		if err != nil {
			return err
		}
		path := outputPath(opts.output, input, format, single)
		if err := writeOutput(ctx, path, data); err != nil {
			return err
		}
		printFile(path)
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(opts.formats)))
	return nil
}

// loadGraph returns a layered graph for input: a JSON graph file is
// imported as is, anything else is analyzed as a source root.
func (c *CLI) loadGraph(cmd *cobra.Command, input string, f *analysisFlags) (*dag.DAG, nodelink.Options, error) {
	if info, err := os.Stat(input); err == nil && !info.IsDir() && strings.EqualFold(filepath.Ext(input), ".json") {
		g, err := io.ImportJSON(input)
		if err != nil {
			return nil, nodelink.Options{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "import %s", input)
		}
		cfg, err := c.loadConfig(cmd, filepath.Dir(input), f)
		if err != nil {
			return nil, nodelink.Options{}, err
		}
		c.Logger.Debug("loaded graph", "file", input, "nodes", g.NodeCount(), "edges", g.EdgeCount())
		return g, cfg.RenderOptions(), nil
	}

	cfg, err := c.loadConfig(cmd, input, f)
	if err != nil {
		return nil, nodelink.Options{}, err
	}
	res, err := c.analyze(cmd.Context(), cfg, input, f.quiet)
	if err != nil {
		return nil, nodelink.Options{}, err
	}
	printIssues(res)
	return res.Graph, cfg.RenderOptions(), nil
}

func renderFormat(ctx context.Context, g *dag.DAG, dot, format string) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatJSON:
		var sb strings.Builder
		if err := io.WriteJSON(g, &sb); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode JSON")
		}
		return []byte(sb.String()), nil
	default:
		data, err := nodelink.Render(ctx, dot, format)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		return data, nil
	}
}
