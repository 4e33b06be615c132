package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordpath/render"
)

func newGraphCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Build the word graph and render it without searching",
		Long: `Build the word graph from the dictionary and render it.

Examples:
  wordpath graph
  wordpath graph --format mermaid
  wordpath graph --seed 7 --format dot -o words.dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			_, g, err := a.buildGraph()
			if err != nil {
				return err
			}

			term := render.NewTerminal(cmd.OutOrStdout(), a.memo.Func(), a.cfg.Render.NoColor)
			if err := a.render(cmd, term, g, nil); err != nil {
				return err
			}

			return a.finish(cmd)
		},
	}
}
