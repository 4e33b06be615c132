package ucs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wordpath/cost"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("ucs: graph is nil")

	// ErrNodeNotFound indicates that the start label is not a vertex of the graph.
	ErrNodeNotFound = errors.New("ucs: start node not found")

	// ErrNilCost indicates WithCost(nil) was supplied.
	ErrNilCost = errors.New("ucs: cost function is nil")

	// ErrNegativeCost indicates the cost function returned a negative value,
	// which would break the finalization order.
	ErrNegativeCost = errors.New("ucs: negative step cost")
)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation; checked before each frontier pop.
	Ctx context.Context

	// Cost prices each step into a node.
	Cost cost.Func

	// OnVisit is called when a node is finalized, with its accumulated cost.
	// Returning an error aborts the search.
	OnVisit func(label string, acc int64) error

	// OnPush is called when a node receives a strictly better cost and is
	// pushed onto the frontier.
	OnPush func(label string, acc int64)

	// internal error recorded during option parsing
	err error
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with cost.ASCII, context.Background and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Cost:    cost.ASCII,
		OnVisit: func(string, int64) error { return nil },
		OnPush:  func(string, int64) {},
	}
}

// WithCost sets the step-cost policy. A nil f is reported as ErrNilCost
// when Search runs.
func WithCost(f cost.Func) Option {
	return func(o *Options) {
		if f == nil {
			o.err = ErrNilCost
			return
		}
		o.Cost = f
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every finalized node.
func WithOnVisit(fn func(label string, acc int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPush registers a callback run whenever a node's best cost improves.
func WithOnPush(fn func(label string, acc int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// Result reports the outcome of one search.
type Result struct {
	// Path is start … goal, or nil when the goal was not reached.
	Path []string

	// Costs maps every discovered label to its best known accumulated cost.
	// Finalized labels hold their optimal cost.
	Costs map[string]int64

	// Order lists labels in the order they were finalized.
	Order []string

	// Found reports whether Path is set.
	Found bool

	// Total is Costs[goal] when Found, otherwise 0.
	Total int64
}

// PathCost re-prices Path with f: the sum of f over every node after the
// start. It equals Total when f is the cost used by the search.
func (r *Result) PathCost(f cost.Func) int64 {
	if r == nil || len(r.Path) < 2 {
		return 0
	}
	var sum int64
	for _, l := range r.Path[1:] {
		sum += f(l)
	}
	return sum
}

// String renders the path as "a → b → c", or "<no path>".
func (r *Result) String() string {
	if r == nil || !r.Found {
		return "<no path>"
	}
	return strings.Join(r.Path, " → ")
}

// GoString is used by %#v in test failure messages.
func (r *Result) GoString() string {
	if r == nil {
		return "ucs.Result(nil)"
	}
	return fmt.Sprintf("ucs.Result{Found:%t Total:%d Path:%q Order:%q}", r.Found, r.Total, r.Path, r.Order)
}
