package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordpath/builder"
	"github.com/katalvlaran/wordpath/core"
	"github.com/katalvlaran/wordpath/cost"
	"github.com/katalvlaran/wordpath/dictionary"
	"github.com/katalvlaran/wordpath/internal/config"
	"github.com/katalvlaran/wordpath/internal/logging"
	"github.com/katalvlaran/wordpath/internal/metrics"
	"github.com/katalvlaran/wordpath/render"
)

// app carries everything one command invocation needs.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	memo    *cost.Memo
}

// newApp resolves configuration (defaults, file, env, then flags) and
// wires logging, metrics and the cost memo.
func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, opts, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.New(),
		memo:    cost.NewMemo(cost.ASCII, cfg.Cost.CacheSize),
	}, nil
}

func applyFlags(cmd *cobra.Command, opts *globalOptions, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("dictionary") {
		cfg.Dictionary = opts.dictionary
	}
	if changed("seed") {
		cfg.Graph.Seed = opts.seed
	}
	if changed("random-seed") {
		cfg.Graph.RandomSeed = opts.randomSeed
	}
	if changed("min-degree") {
		cfg.Graph.MinDegree = opts.minDegree
	}
	if changed("max-degree") {
		cfg.Graph.MaxDegree = opts.maxDegree
	}
	if changed("cost-cache") {
		cfg.Cost.CacheSize = opts.cacheSize
	}
	if changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = opts.logFormat
	}
	if changed("format") {
		cfg.Render.Format = opts.format
	}
	if changed("output") {
		cfg.Render.Output = opts.output
	}
	if changed("no-color") {
		cfg.Render.NoColor = opts.noColor
	}
	if changed("metrics") {
		cfg.Metrics.Enabled = opts.metrics
	}
}

// buildGraph loads the dictionary and links its words at random.
func (a *app) buildGraph() (*dictionary.Dictionary, *core.Graph, error) {
	dict, err := dictionary.Load(a.cfg.Dictionary)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("dictionary_loaded",
		slog.String("path", a.cfg.Dictionary),
		slog.Int("words", dict.Len()))

	seed := a.cfg.Graph.Seed
	if a.cfg.Graph.RandomSeed {
		seed = time.Now().UnixNano()
	}

	g, err := builder.Build(dict.Labels(), a.cfg.Graph.MinDegree, a.cfg.Graph.MaxDegree,
		builder.WithSeed(seed),
		builder.WithLogger(logging.WithComponent(a.logger, "builder")),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("build graph from %s: %w", a.cfg.Dictionary, err)
	}
	a.metrics.ObserveBuild(g.VertexCount(), g.EdgeCount())
	a.logger.Info("graph_ready",
		slog.Int64("seed", seed),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("components", len(g.Components())))

	return dict, g, nil
}

// render draws g in the configured format, highlighting path. term is used
// for the "text" format.
func (a *app) render(cmd *cobra.Command, term *render.Terminal, g *core.Graph, path []string) error {
	format := strings.ToLower(a.cfg.Render.Format)
	if format == "none" {
		return nil
	}

	var w io.Writer = cmd.OutOrStdout()
	if a.cfg.Render.Output != "" {
		f, err := os.Create(a.cfg.Render.Output)
		if err != nil {
			return fmt.Errorf("create %s: %w", a.cfg.Render.Output, err)
		}
		defer func() { _ = f.Close() }()
		w = f
		term = render.NewTerminal(f, a.memo.Func(), true)
	} else {
		_, _ = fmt.Fprintln(w)
	}

	switch format {
	case "dot":
		return render.WriteDOT(w, g, path, a.memo.Func())
	case "mermaid":
		return render.WriteMermaid(w, g, path, a.memo.Func())
	default:
		term.Graph(g, path)
		return nil
	}
}

// finish prints the metrics dump when enabled.
func (a *app) finish(cmd *cobra.Command) error {
	if !a.cfg.Metrics.Enabled {
		return nil
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out)
	return a.metrics.Dump(out)
}
