// Package override decides whether a method overrides a target method.
package override

import (
	"go/types"

	"github.com/datlag/tolgeerewrite/internal/identity"
)

// Graph enumerates the methods a method directly overrides.
type Graph interface {
	Overridden(fn *types.Func) []*types.Func
}

// Resolver walks a Graph depth first.
type Resolver struct {
	graph    Graph
	identify func(*types.Func) (identity.ID, bool)
}

// New creates a Resolver over graph using identity.Of.
func New(graph Graph) *Resolver {
	return &Resolver{graph: graph, identify: identity.Of}
}

// OverridesTarget reports whether fn is target or transitively overrides it.
// Each declaration is expanded at most once per call, so cycles terminate.
func (r *Resolver) OverridesTarget(fn *types.Func, target identity.ID) bool {
	if fn == nil {
		return false
	}

	return r.overrides(fn, target, make(map[*types.Func]struct{}))
}

func (r *Resolver) overrides(fn *types.Func, target identity.ID, visited map[*types.Func]struct{}) bool {
	if r.matches(fn, target) {
		return true
	}

	if _, ok := visited[fn]; ok {
		return false
	}
	visited[fn] = struct{}{}

	for _, o := range r.graph.Overridden(fn) {
		if o == nil {
			continue
		}

		if r.matches(o, target) || r.overrides(o, target, visited) {
			return true
		}
	}

	return false
}

// matches folds identity resolution failure into false.
func (r *Resolver) matches(fn *types.Func, target identity.ID) bool {
	id, ok := r.identify(fn)

	return ok && id == target
}
