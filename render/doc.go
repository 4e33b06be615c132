// Package render draws a word graph and highlights a search path.
//
// Writers:
//
//	WriteDOT      - Graphviz "graph" source; path nodes and edges in red.
//	WriteMermaid  - Mermaid flowchart; path nodes in a "path" class and
//	                path links styled with linkStyle.
//	Terminal      - lipgloss-styled text for the CLI: visit trace, path,
//	                adjacency listing.
//
// Every node is labelled with its word and its step cost. Each undirected
// edge is emitted once, in core.Graph.Edges order, so output is stable for
// a given graph.
package render
