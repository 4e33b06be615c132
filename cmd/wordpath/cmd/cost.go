package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCostCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cost <word>...",
		Short: "Print the step cost of each word",
		Long: `Print the cost of stepping into each word: the sum of its character codes.

Example:
  wordpath cost casa perro`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range args {
				if _, err := fmt.Fprintf(out, "%s\t%d\n", w, a.memo.Cost(w)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
