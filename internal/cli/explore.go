package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type exploreOpts struct {
	analysisFlags
}

// exploreCommand creates the interactive class browser.
func (c *CLI) exploreCommand() *cobra.Command {
	var opts exploreOpts

	cmd := &cobra.Command{
		Use:   "explore <root|graph.json>",
		Short: "Browse classes and their dependencies interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := c.loadGraph(cmd, args[0], &opts.analysisFlags)
			if err != nil {
				return err
			}
			if g.NodeCount() == 0 {
				printWarning("no classes found under %s", args[0])
				return nil
			}
			p := tea.NewProgram(NewExploreModel(g), tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	opts.register(cmd)
	return cmd
}
