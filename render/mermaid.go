package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordpath/core"
	"github.com/katalvlaran/wordpath/cost"
)

// WriteMermaid writes g as a Mermaid flowchart. Node IDs are "n<NodeID>",
// path nodes get the "path" class and path links a red linkStyle.
// f prices the node labels; nil means cost.ASCII.
func WriteMermaid(w io.Writer, g *core.Graph, path []string, f cost.Func) error {
	if f == nil {
		f = cost.ASCII
	}
	idx := newPathIndex(path)
	bw := bufio.NewWriter(w)

	nodeID := func(l string) string {
		id, _ := g.ID(l)
		return "n" + strconv.FormatUint(uint64(id), 10)
	}

	fmt.Fprintln(bw, "graph LR")
	var pathNodes []string
	for _, l := range g.Vertices() {
		fmt.Fprintf(bw, "  %s[\"%s (%d)\"]\n", nodeID(l), mermaidEscape(l), f(l))
		if idx.hasNode(l) {
			pathNodes = append(pathNodes, nodeID(l))
		}
	}

	var pathLinks []string
	for i, e := range g.Edges() {
		fmt.Fprintf(bw, "  %s --- %s\n", nodeID(e.From), nodeID(e.To))
		if idx.hasEdge(e.From, e.To) {
			pathLinks = append(pathLinks, strconv.Itoa(i))
		}
	}

	if len(pathNodes) > 0 {
		fmt.Fprintln(bw, "  classDef path fill:#f66,stroke:#333,stroke-width:2px")
		fmt.Fprintf(bw, "  class %s path\n", strings.Join(pathNodes, ","))
	}
	if len(pathLinks) > 0 {
		fmt.Fprintf(bw, "  linkStyle %s stroke:red,stroke-width:2px\n", strings.Join(pathLinks, ","))
	}

	return bw.Flush()
}

// mermaidEscape replaces characters that end a quoted Mermaid label.
func mermaidEscape(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
