package registry

import (
	"go/types"

	"github.com/datlag/tolgeerewrite/internal/config"
	"github.com/datlag/tolgeerewrite/internal/funcspec"
	"github.com/datlag/tolgeerewrite/internal/identity"
	"github.com/datlag/tolgeerewrite/internal/typeutil"
)

// Candidate is a replacement function read as an extension function.
type Candidate struct {
	Spec  funcspec.Spec
	Func  *types.Func
	Shape identity.Shape
}

// Registry holds the target and candidates resolved for one pass.
// It is read-only after Resolve returns.
type Registry struct {
	spec       funcspec.Spec
	target     *types.Named
	targetID   identity.ID
	candidates []Candidate
	marker     typeutil.TypeSpec
	graph      *identity.Graph
}

// Resolve looks up the configured target and candidates among pkg and its
// transitive imports.
//
// A target that cannot be found yields a disabled registry: the platform
// package is legitimately absent from many builds. Candidates that cannot be
// found, or are not extension-shaped, are skipped.
func Resolve(pkg *types.Package, cfg config.Config) *Registry {
	reg := &Registry{
		spec:   funcspec.Parse(cfg.Target),
		marker: typeutil.ParseType(cfg.Marker),
	}

	if pkg == nil || !reg.spec.IsMethod() {
		return reg
	}

	packages := importGraph(pkg)

	target := lookupNamed(packages, reg.spec.PkgPath, reg.spec.TypeName)
	if target == nil {
		return reg
	}

	// The method must be declared on the target type itself, not promoted
	// from an embedded one.
	obj, _, _ := types.LookupFieldOrMethod(target, true, target.Obj().Pkg(), reg.spec.FuncName)
	if fn, ok := obj.(*types.Func); !ok || !reg.spec.Matches(fn) {
		return reg
	}

	reg.target = target
	reg.targetID = identity.Method(target.Obj().Pkg().Path(), target.Obj().Name(), reg.spec.FuncName)
	reg.graph = identity.NewGraph(target)

	for _, spec := range funcspec.ParseList(cfg.ReplacementList()) {
		if c, ok := lookupCandidate(packages, spec); ok {
			reg.candidates = append(reg.candidates, c)
		}
	}

	return reg
}

// Enabled reports whether the target was resolved.
func (r *Registry) Enabled() bool {
	return r != nil && r.target != nil
}

// Spec returns the configured target specification.
func (r *Registry) Spec() funcspec.Spec {
	return r.spec
}

// Target returns the resolved target type, or nil.
func (r *Registry) Target() *types.Named {
	return r.target
}

// TargetID returns the identity of the target method.
func (r *Registry) TargetID() identity.ID {
	return r.targetID
}

// Graph returns the override graph linked to the target type.
func (r *Registry) Graph() *identity.Graph {
	return r.graph
}

// Candidates returns the candidates in registry order.
func (r *Registry) Candidates() []Candidate {
	return r.candidates
}

// Select returns the first candidate with the given arity whose first
// parameter is the marker type.
func (r *Registry) Select(arity int) (Candidate, bool) {
	for _, c := range r.candidates {
		if c.Shape.Arity() == arity && r.marker.Matches(c.Shape.First()) {
			return c, true
		}
	}

	return Candidate{}, false
}

// importGraph returns pkg and every package it transitively imports,
// in breadth-first order.
func importGraph(pkg *types.Package) []*types.Package {
	seen := map[*types.Package]bool{pkg: true}
	queue := []*types.Package{pkg}

	for i := 0; i < len(queue); i++ {
		for _, imp := range queue[i].Imports() {
			if !seen[imp] {
				seen[imp] = true
				queue = append(queue, imp)
			}
		}
	}

	return queue
}

func lookupNamed(packages []*types.Package, pkgPath, name string) *types.Named {
	for _, p := range packages {
		if !typeutil.MatchPkg(p.Path(), pkgPath) {
			continue
		}

		obj, ok := p.Scope().Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		if named, ok := types.Unalias(obj.Type()).(*types.Named); ok {
			return named
		}
	}

	return nil
}

func lookupCandidate(packages []*types.Package, spec funcspec.Spec) (Candidate, bool) {
	if spec.IsMethod() {
		return Candidate{}, false
	}

	for _, p := range packages {
		if !typeutil.MatchPkg(p.Path(), spec.PkgPath) {
			continue
		}

		fn, ok := p.Scope().Lookup(spec.FuncName).(*types.Func)
		if !ok || !spec.Matches(fn) {
			continue
		}

		shape, ok := identity.ExtensionShapeOf(fn)
		if !ok {
			return Candidate{}, false
		}

		return Candidate{Spec: spec, Func: fn, Shape: shape}, true
	}

	return Candidate{}, false
}
