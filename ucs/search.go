package ucs

import (
	"container/heap"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/wordpath/core"
)

// noPred marks a node without predecessor (the start) or not yet discovered.
const noPred = -1

// Search finds a minimum accumulated-cost path from start to goal in g.
//
// Returns:
//
//   - res: always non-nil. See the package documentation for the three outcomes.
//   - err: ErrNilGraph, ErrNilCost, ErrNodeNotFound, ErrNegativeCost, the
//     context error on cancellation, or a wrapped OnVisit error. On
//     cancellation or hook abort res holds the partial costs and order.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrNilCost).
//  3. g must contain start (ErrNodeNotFound).
//
// A goal that is not a vertex of g is simply never reached: the search
// exhausts start's component and reports Unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	empty := &Result{Costs: map[string]int64{}}

	if g == nil {
		return empty, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return empty, cfg.err
	}

	src, ok := g.ID(start)
	if !ok {
		return empty, fmt.Errorf("%w: %q", ErrNodeNotFound, start)
	}
	dst, hasGoal := g.ID(goal)

	r := newRunner(g, cfg, src, dst, hasGoal)
	err := r.process()

	return r.result(), err
}

// runner holds the mutable state of a single search: the SearchState.
// Per-node tables are indexed by NodeID.
type runner struct {
	g       *core.Graph
	options Options

	src, dst core.NodeID
	hasGoal  bool

	best    []int64         // best known accumulated cost, valid iff known
	known   []bool          // best[id] has been set
	pred    []int64         // predecessor NodeID or noPred
	visited *roaring.Bitmap // finalized nodes
	order   []core.NodeID   // finalization order
	pq      nodePQ          // frontier with lazy deletion
	seq     uint64          // push counter; FIFO tie-break among equal costs
	found   bool
}

func newRunner(g *core.Graph, cfg Options, src, dst core.NodeID, hasGoal bool) *runner {
	v := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		src:     src,
		dst:     dst,
		hasGoal: hasGoal,
		best:    make([]int64, v),
		known:   make([]bool, v),
		pred:    make([]int64, v),
		visited: roaring.New(),
		pq:      make(nodePQ, 0, v),
	}
	for i := range r.pred {
		r.pred[i] = noPred
	}

	r.best[src] = 0
	r.known[src] = true
	heap.Init(&r.pq)
	r.push(src, 0)

	return r
}

// process is the main loop: pop the cheapest entry, drop it if stale,
// finalize it, stop on the goal, otherwise relax its neighbors.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u, c := item.id, item.cost

		if r.visited.Contains(uint32(u)) {
			continue
		}
		r.visited.Add(uint32(u))
		r.order = append(r.order, u)

		label := r.g.Label(u)
		if err := r.options.OnVisit(label, c); err != nil {
			return fmt.Errorf("ucs: OnVisit(%q): %w", label, err)
		}

		if r.hasGoal && u == r.dst {
			r.found = true
			return nil
		}

		if err := r.relax(u, c); err != nil {
			return err
		}
	}

	return nil
}

// relax offers c + cost(v) to every unfinalized neighbor v of u and keeps
// it only when strictly better than the best known cost.
func (r *runner) relax(u core.NodeID, c int64) error {
	for _, v := range r.g.NeighborIDs(u) {
		if r.visited.Contains(uint32(v)) {
			continue
		}

		label := r.g.Label(v)
		step := r.options.Cost(label)
		if step < 0 {
			return fmt.Errorf("%w: cost(%q)=%d", ErrNegativeCost, label, step)
		}

		candidate := c + step
		if r.known[v] && candidate >= r.best[v] {
			continue
		}
		r.best[v] = candidate
		r.known[v] = true
		r.pred[v] = int64(u)
		r.push(v, candidate)
		r.options.OnPush(label, candidate)
	}

	return nil
}

func (r *runner) push(id core.NodeID, c int64) {
	heap.Push(&r.pq, &nodeItem{id: id, cost: c, seq: r.seq})
	r.seq++
}

// result converts the ID-indexed state into the label-keyed Result.
func (r *runner) result() *Result {
	res := &Result{
		Costs: make(map[string]int64, len(r.order)),
		Order: make([]string, len(r.order)),
	}
	for id, ok := range r.known {
		if ok {
			res.Costs[r.g.Label(core.NodeID(id))] = r.best[id]
		}
	}
	for i, id := range r.order {
		res.Order[i] = r.g.Label(id)
	}

	if r.found {
		res.Found = true
		res.Total = r.best[r.dst]
		res.Path = r.reconstruct()
	}

	return res
}

// reconstruct follows predecessor links from the goal back to the start
// and reverses them.
func (r *runner) reconstruct() []string {
	var rev []string
	for cur := int64(r.dst); cur != noPred; cur = r.pred[cur] {
		rev = append(rev, r.g.Label(core.NodeID(cur)))
	}
	path := make([]string, len(rev))
	for i, l := range rev {
		path[len(rev)-1-i] = l
	}

	return path
}

// nodeItem is one frontier entry.
type nodeItem struct {
	id   core.NodeID
	cost int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (cost, seq). Outdated
// entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
