package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/wordpath/core"
	"github.com/katalvlaran/wordpath/cost"
	"github.com/katalvlaran/wordpath/ucs"
)

// Terminal writes human-readable search output.
// Errors from writing are intentionally ignored for console output.
type Terminal struct {
	out    io.Writer
	styles Styles
	cost   cost.Func
}

// NewTerminal creates a Terminal on out. Color is used only when out is a
// TTY, NO_COLOR is unset and noColor is false.
func NewTerminal(out io.Writer, f cost.Func, noColor bool) *Terminal {
	if f == nil {
		f = cost.ASCII
	}
	plain := noColor || DetectNoColor() || !IsTTY(out)
	return &Terminal{out: out, styles: GetStyles(plain), cost: f}
}

// NewTerminalWithStyles creates a Terminal with explicit styles.
func NewTerminalWithStyles(out io.Writer, f cost.Func, styles Styles) *Terminal {
	if f == nil {
		f = cost.ASCII
	}
	return &Terminal{out: out, styles: styles, cost: f}
}

// Searching prints the search banner.
func (t *Terminal) Searching(start, goal string) {
	_, _ = fmt.Fprintf(t.out, "%s\n\n", t.styles.Header.Render(
		fmt.Sprintf("Searching from %q to %q...", start, goal)))
}

// Visit prints one trace line; suitable as a ucs OnVisit hook body.
func (t *Terminal) Visit(label string, acc int64) {
	_, _ = fmt.Fprintf(t.out, "%s %s %s\n",
		t.styles.Label.Render("visit"),
		label,
		t.styles.Cost.Render(fmt.Sprintf("(accumulated cost=%d)", acc)))
}

// Result prints the resolved path and the goal's definition, or a
// not-found notice when res has no path.
func (t *Terminal) Result(res *ucs.Result, goal, definition string) {
	if res == nil || !res.Found {
		_, _ = fmt.Fprintf(t.out, "\n%s\n", t.styles.Warning.Render(
			fmt.Sprintf("No route found to %q.", goal)))
		return
	}

	steps := make([]string, len(res.Path))
	for i, l := range res.Path {
		steps[i] = t.styles.Path.Render(l)
	}
	_, _ = fmt.Fprintf(t.out, "\n%s\n%s\n", t.styles.Header.Render("Route found:"), strings.Join(steps, " → "))
	_, _ = fmt.Fprintf(t.out, "%s %d\n", t.styles.Label.Render("Total cost:"), res.Total)
	if definition == "" {
		definition = "not found"
	}
	_, _ = fmt.Fprintf(t.out, "\n%s %s\n", t.styles.Label.Render("Definition:"), definition)
}

// Graph prints the adjacency list, one "word (cost): neighbors" line per
// node in NodeID order, with path nodes highlighted.
func (t *Terminal) Graph(g *core.Graph, path []string) {
	idx := newPathIndex(path)
	style := func(l string) string {
		if idx.hasNode(l) {
			return t.styles.Path.Render(l)
		}
		return t.styles.Node.Render(l)
	}

	for _, l := range g.Vertices() {
		nbrs, err := g.Neighbors(l)
		if err != nil {
			continue
		}
		parts := make([]string, len(nbrs))
		for i, nb := range nbrs {
			parts[i] = style(nb)
		}
		_, _ = fmt.Fprintf(t.out, "%s %s: %s\n",
			style(l),
			t.styles.Cost.Render(fmt.Sprintf("(%d)", t.cost(l))),
			strings.Join(parts, ", "))
	}
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// DetectNoColor checks if the NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
