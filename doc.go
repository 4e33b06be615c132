// Package wordpath finds least-cost routes through a random word graph.
//
// A dictionary of "word:definition" lines supplies the vertices. Every word
// is linked to a few others drawn at random, giving an undirected simple
// graph. A uniform-cost search then looks for the cheapest route between two
// words, where stepping into a word costs the sum of its character codes.
//
// Subpackages:
//
//	core/         arena-backed undirected Graph, NodeIDs, sentinel errors, components
//	cost/         the character-code cost function and an LRU memo around it
//	builder/      seeded RandomNeighbors constructor and deterministic fixtures
//	ucs/          uniform-cost search with visit/push hooks and a Result report
//	dictionary/   "word:definition" text and YAML dictionary loaders
//	render/       Graphviz DOT, Mermaid and lipgloss terminal renderers
//
// Quick example:
//
//	casa ─── sol
//	 │        │
//	gato ─── perro
//
//	casa → sol → perro costs 334 + 552 = 886, cheaper than
//	casa → gato → perro at 427 + 552 = 979.
//
// The wordpath command in cmd/wordpath wires all of the above with YAML
// configuration, slog logging and Prometheus metrics.
//
//	go install github.com/katalvlaran/wordpath/cmd/wordpath@latest
package wordpath
