package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wordpath/core"
	"github.com/katalvlaran/wordpath/cost"
)

// DOT colors; path elements use pathColor.
const (
	dotNodeColor = "lightgray"
	dotPathColor = "red"
	dotGraphName = "wordpath"
)

// WriteDOT writes g as a Graphviz undirected graph. Nodes on path are filled
// red and edges between consecutive path nodes are drawn red and thicker.
// A nil path draws the plain graph. f prices the node labels; nil means cost.ASCII.
func WriteDOT(w io.Writer, g *core.Graph, path []string, f cost.Func) error {
	if f == nil {
		f = cost.ASCII
	}
	idx := newPathIndex(path)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "graph %s {\n", dotGraphName)
	fmt.Fprintf(bw, "  node [shape=circle, style=filled, fillcolor=%s, color=black];\n", dotNodeColor)
	for _, l := range g.Vertices() {
		label := strconv.Quote(fmt.Sprintf("%s\n(%d)", l, f(l)))
		if idx.hasNode(l) {
			fmt.Fprintf(bw, "  %s [label=%s, fillcolor=%s];\n", strconv.Quote(l), label, dotPathColor)
			continue
		}
		fmt.Fprintf(bw, "  %s [label=%s];\n", strconv.Quote(l), label)
	}
	for _, e := range g.Edges() {
		if idx.hasEdge(e.From, e.To) {
			fmt.Fprintf(bw, "  %s -- %s [color=%s, penwidth=2];\n", strconv.Quote(e.From), strconv.Quote(e.To), dotPathColor)
			continue
		}
		fmt.Fprintf(bw, "  %s -- %s;\n", strconv.Quote(e.From), strconv.Quote(e.To))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
