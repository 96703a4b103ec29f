package identity

import (
	"go/types"

	"github.com/datlag/tolgeerewrite/internal/typeutil"
)

// Graph derives the override relation from go/types.
//
// A method M on named type N overrides the same-named method reached through
// each embedded field (struct) or embedded interface of N, and the same-named
// method of every supertype interface N implements. Edges are back-references
// computed on demand; nothing is cached or owned.
type Graph struct {
	supers []*types.Named
}

// NewGraph creates a graph that also links methods to the given interface
// supertypes. Non-interface supertypes are ignored for that purpose.
func NewGraph(supers ...*types.Named) *Graph {
	g := &Graph{}

	for _, s := range supers {
		if s != nil && types.IsInterface(s) {
			g.supers = append(g.supers, s)
		}
	}

	return g
}

// Overridden returns the methods fn directly overrides, in embedding
// declaration order followed by supertype order.
func (g *Graph) Overridden(fn *types.Func) []*types.Func {
	if fn == nil {
		return nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil
	}

	named := typeutil.NamedOf(sig.Recv().Type())
	if named == nil {
		return nil
	}

	var out []*types.Func

	seen := map[*types.Func]bool{fn: true}
	add := func(m *types.Func) {
		if m != nil && !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	switch u := named.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			if f := u.Field(i); f.Embedded() {
				add(methodOf(f.Type(), fn))
			}
		}

	case *types.Interface:
		for i := range u.NumEmbeddeds() {
			add(methodOf(u.EmbeddedType(i), fn))
		}
	}

	for _, super := range g.supers {
		if typeutil.SameNamed(named, super) {
			continue
		}

		if typeutil.IsSubtypeOf(sig.Recv().Type(), super) {
			add(methodOf(super, fn))
		}
	}

	return out
}

func methodOf(t types.Type, fn *types.Func) *types.Func {
	obj, _, _ := types.LookupFieldOrMethod(t, true, fn.Pkg(), fn.Name())
	m, _ := obj.(*types.Func)

	return m
}
