package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/injectgraph/pkg/analysis"
	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/io"
	"github.com/matzehuels/injectgraph/pkg/render/nodelink"
)

type analyzeOpts struct {
	analysisFlags
	jsonOut string
	dotOut  string
	classes bool
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze <root>",
		Short: "Analyze a Java source tree and print its dependency layers",
		Long: `Analyze enumerates the Java sources under root, extracts injection
relationships and prints the dependency graph layer by layer, dependents
first. The command fails when the wiring contains a cycle.`,
		Example: `  injectgraph analyze ./src/main/java
  injectgraph analyze . --json graph.json --dot graph.dot
  injectgraph analyze . --disable inheritance --classes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.jsonOut, "json", "", "write the graph as JSON to this file")
	cmd.Flags().StringVar(&opts.dotOut, "dot", "", "write the graph as DOT to this file")
	cmd.Flags().BoolVar(&opts.classes, "classes", false, "print the per-class extraction report")

	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command, root string, opts *analyzeOpts) error {
	cfg, err := c.loadConfig(cmd, root, &opts.analysisFlags)
	if err != nil {
		return err
	}
	res, err := c.analyze(cmd.Context(), cfg, root, opts.quiet)
	if err != nil {
		return err
	}

	printSuccess("Analyzed %s", StyleValue.Render(res.Root))
	printStats(res)
	printIssues(res)
	if res.Graph.NodeCount() > 0 {
		printLayers(res.Graph)
	}
	if opts.classes {
		printClasses(res.Classes)
	}

	if opts.jsonOut != "" {
		if err := writeJSON(res, opts.jsonOut); err != nil {
			return err
		}
		printFile(opts.jsonOut)
	}
	if opts.dotOut != "" {
		ro := cfg.RenderOptions()
		if err := writeOutput(cmd.Context(), opts.dotOut, []byte(nodelink.ToDOT(res.Graph, ro))); err != nil {
			return err
		}
		printFile(opts.dotOut)
	}
	if opts.jsonOut == "" && opts.dotOut == "" {
		printNextStep("Render it", appName+" render "+root+" -f svg")
	}
	return nil
}

func writeJSON(res *analysis.Result, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := io.ExportJSON(res.Graph, path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

func writeOutput(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	return nil
}
