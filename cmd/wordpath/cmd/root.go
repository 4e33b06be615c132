// Package cmd provides the CLI commands for wordpath.
package cmd

import (
	"github.com/spf13/cobra"
)

// globalOptions holds flags shared by every command. Zero values mean
// "keep what the config file and environment say"; cobra's Changed
// tracking decides which ones apply.
type globalOptions struct {
	configPath string
	dictionary string
	seed       int64
	randomSeed bool
	minDegree  int
	maxDegree  int
	cacheSize  int
	logLevel   string
	logFormat  string
	format     string
	output     string
	noColor    bool
	metrics    bool
}

// NewRootCmd creates the root command. Running it without a subcommand
// performs the default search between the configured start and goal.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "wordpath",
		Short: "Least-cost routes through a random word graph",
		Long: `wordpath loads a "word:definition" dictionary, links every word to a
few random others, and finds the cheapest route between two words.

Stepping into a word costs the sum of its character codes.

Run 'wordpath' alone to search between the configured start and goal.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, opts, "", "")
		},
	}

	cmd.SetVersionTemplate("wordpath version {{.Version}}\n")

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&opts.dictionary, "dictionary", "d", "", "Dictionary file (word:definition lines, or .yaml mapping)")
	f.Int64Var(&opts.seed, "seed", 0, "Seed for graph construction")
	f.BoolVar(&opts.randomSeed, "random-seed", false, "Seed graph construction from the clock")
	f.IntVar(&opts.minDegree, "min-degree", 0, "Minimum neighbors drawn per word")
	f.IntVar(&opts.maxDegree, "max-degree", 0, "Maximum neighbors drawn per word")
	f.IntVar(&opts.cacheSize, "cost-cache", 0, "Entries kept in the cost memo")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", "", "Log format: text, json")
	f.StringVarP(&opts.format, "format", "f", "", "Graph rendering: text, dot, mermaid, none")
	f.StringVarP(&opts.output, "output", "o", "", "Write the rendering to this file instead of stdout")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	f.BoolVar(&opts.metrics, "metrics", false, "Print Prometheus metrics after the run")

	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newGraphCmd(opts))
	cmd.AddCommand(newCostCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
