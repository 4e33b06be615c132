// Package ucs implements uniform-cost search between two words of a
// core.Graph.
//
// The search is Dijkstra with lazy deletion. The cost of a step into a
// node is cost(node) (see package cost), independent of the node it came
// from, and accumulates along the path. Nodes are finalized in
// non-decreasing order of accumulated cost; the first time the goal is
// finalized its path is optimal and is returned immediately.
//
// Outcomes:
//
//   - Found:       Result.Found, Result.Path = start … goal, Result.Total = Costs[goal].
//   - Unreachable: Result.Found == false, Path == nil, err == nil. Expected and
//     common, because random word graphs are not guaranteed connected.
//   - NodeNotFound: start is not in the graph; empty Result and ErrNodeNotFound.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the binary-heap frontier.
//   - Space: O(V + E); stale frontier entries are dropped on pop.
//
// Options:
//
//   - WithCost(f):      step-cost policy (default cost.ASCII).
//   - WithContext(ctx): cancellation, checked at every frontier pop.
//   - WithOnVisit(fn):  called once per finalized node; an error aborts.
//   - WithOnPush(fn):   called whenever a node's best cost improves.
//
// Search state is created per call; a frozen Graph may be shared by
// concurrent searches without locking.
package ucs
