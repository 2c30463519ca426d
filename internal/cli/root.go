package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/injectgraph/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Injectgraph maps dependency-injection wiring in Java sources",
		Long: `Injectgraph scans a Java source tree, infers which classes depend on which
through constructor, setter, field and configuration-level injection, and
prints the resulting dependency graph in layers. Cyclic wiring is reported
as an error.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.publishCommand())
	root.AddCommand(c.completionCommand())

	return root
}
