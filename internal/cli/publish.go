package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/injectgraph/pkg/errors"
	"github.com/matzehuels/injectgraph/pkg/sink"
)

type publishOpts struct {
	analysisFlags
	targets []string
}

// publishCommand analyzes a root and writes the result to one or more sinks.
func (c *CLI) publishCommand() *cobra.Command {
	var opts publishOpts

	cmd := &cobra.Command{
		Use:   "publish <root> --to <target>",
		Short: "Publish the dependency graph to a file, Redis or MongoDB",
		Example: `  injectgraph publish ./src --to out/graphs/
  injectgraph publish ./src --to "redis://localhost:6379/0?channel=graphs&ttl=24h"
  injectgraph publish ./src --to mongodb://localhost:27017/shop?collection=deps`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.targets) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "at least one --to target is required")
			}
			return c.runPublish(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringArrayVar(&opts.targets, "to", nil, "publish target (file path, file://, redis://, mongodb://); repeatable")

	return cmd
}

func (c *CLI) runPublish(cmd *cobra.Command, root string, opts *publishOpts) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig(cmd, root, &opts.analysisFlags)
	if err != nil {
		return err
	}
	res, err := c.analyze(ctx, cfg, root, opts.quiet)
	if err != nil {
		return err
	}
	printIssues(res)

	doc := sink.NewDocument(res)
	for _, target := range opts.targets {
		s, err := sink.Open(ctx, target)
		if err != nil {
			return err
		}
		err = sink.Publish(ctx, s, doc)
		if cerr := s.Close(ctx); cerr != nil {
			c.Logger.Warn("closing sink", "backend", s.Name(), "err", cerr)
		}
		if err != nil {
			return err
		}
		c.Logger.Debug("published", "backend", s.Name(), "run_id", doc.ID)
		printSuccess("Published run %s to %s", StyleValue.Render(doc.ID), s.Name())
		if fs, ok := s.(*sink.FileSink); ok {
			printFile(fs.Path(doc.ID))
		}
	}
	return nil
}
