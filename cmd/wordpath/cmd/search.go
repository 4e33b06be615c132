package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordpath/internal/metrics"
	"github.com/katalvlaran/wordpath/render"
	"github.com/katalvlaran/wordpath/ucs"
)

func newSearchCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [start goal]",
		Short: "Find the cheapest route between two words",
		Long: `Build the word graph and run a uniform-cost search from start to goal.

Every finalized word is traced with its accumulated cost. When a route
exists it is printed with the goal's definition; an unreachable goal is
reported but is not an error.

Examples:
  wordpath search
  wordpath search casa perro
  wordpath search sol luna --format dot -o graph.dot`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var start, goal string
			if len(args) == 2 {
				start, goal = args[0], args[1]
			}
			return runSearch(cmd, opts, start, goal)
		},
	}

	return cmd
}

// runSearch is the default flow. Empty start or goal fall back to config.
func runSearch(cmd *cobra.Command, opts *globalOptions, start, goal string) error {
	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	if start == "" {
		start = a.cfg.Start
	}
	if goal == "" {
		goal = a.cfg.Goal
	}

	dict, g, err := a.buildGraph()
	if err != nil {
		return err
	}

	term := render.NewTerminal(cmd.OutOrStdout(), a.memo.Func(), a.cfg.Render.NoColor)
	term.Searching(start, goal)

	began := time.Now()
	res, err := ucs.Search(g, start, goal,
		ucs.WithContext(cmd.Context()),
		ucs.WithCost(a.memo.Func()),
		ucs.WithOnVisit(func(label string, acc int64) error {
			term.Visit(label, acc)
			return nil
		}),
	)
	elapsed := time.Since(began)

	switch {
	case errors.Is(err, ucs.ErrNodeNotFound):
		a.metrics.ObserveSearch(metrics.OutcomeNotFound, 0, elapsed)
		a.logger.Warn("start_not_found", slog.String("start", start))
	case err != nil:
		a.metrics.ObserveSearch(metrics.OutcomeError, len(res.Order), elapsed)
		return fmt.Errorf("search %q → %q: %w", start, goal, err)
	case res.Found:
		a.metrics.ObserveSearch(metrics.OutcomeFound, len(res.Order), elapsed)
	default:
		a.metrics.ObserveSearch(metrics.OutcomeUnreachable, len(res.Order), elapsed)
	}

	a.logger.Info("search_finished",
		slog.String("start", start),
		slog.String("goal", goal),
		slog.Bool("found", res.Found),
		slog.Int("visited", len(res.Order)),
		slog.Int64("total", res.Total),
		slog.Duration("elapsed", elapsed))

	definition, _ := dict.Definition(goal)
	term.Result(res, goal, definition)

	if err := a.render(cmd, term, g, res.Path); err != nil {
		return err
	}

	return a.finish(cmd)
}
