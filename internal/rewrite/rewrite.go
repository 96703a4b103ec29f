// Package rewrite decides, per call site, whether a call to the target method
// is redirected to a replacement candidate and builds the replacement call.
package rewrite

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/datlag/tolgeerewrite/internal/funcspec"
	"github.com/datlag/tolgeerewrite/internal/identity"
	"github.com/datlag/tolgeerewrite/internal/override"
	"github.com/datlag/tolgeerewrite/internal/registry"
	"github.com/datlag/tolgeerewrite/internal/typeutil"
)

// Form is the syntactic shape of a matched call.
type Form int

const (
	// FormMethod is recv.Method(args).
	FormMethod Form = iota
	// FormMethodExpr is T.Method(recv, args).
	FormMethodExpr
	// FormExtension is Func(recv, args).
	FormExtension
)

// Qualifier returns the name a file uses for pkg, or "" when pkg is the
// file's own package.
type Qualifier func(pkg *types.Package) string

// Rewrite describes one replacement. Original is never modified.
type Rewrite struct {
	Original *ast.CallExpr
	Call     *ast.CallExpr
	Form     Form

	// Operand is the receiver as written in Original.
	Operand ast.Expr
	// Receiver is the first argument of Call. For promoted methods it
	// selects the embedded fields in Path from Operand, and takes their
	// address when AddressOf is set.
	Receiver  ast.Expr
	Path      []string
	AddressOf bool

	Args      []ast.Expr
	Candidate registry.Candidate
}

// String renders the replacement call.
func (rw *Rewrite) String() string {
	return types.ExprString(rw.Call)
}

// Affixes returns the text placed before and after Operand to spell Receiver.
func (rw *Rewrite) Affixes() (prefix, suffix string) {
	if len(rw.Path) == 0 {
		return "", ""
	}

	if rw.AddressOf {
		prefix = "&"
	}

	if needsParens(rw.Operand) {
		prefix += "("
		suffix = ")"
	}

	return prefix, suffix + "." + strings.Join(rw.Path, ".")
}

// Rewriter holds the per-pass state shared by all call sites.
type Rewriter struct {
	enabled  bool
	reg      *registry.Registry
	info     *types.Info
	resolver *override.Resolver
}

// New creates a Rewriter. A disabled Rewriter or a disabled registry never
// rewrites anything.
func New(reg *registry.Registry, info *types.Info, enabled bool) *Rewriter {
	r := &Rewriter{enabled: enabled, reg: reg, info: info}

	if reg.Enabled() {
		r.resolver = override.New(reg.Graph())
	}

	return r
}

// site is a classified call: callee, receiver and the remaining arguments.
type site struct {
	callee *types.Func
	sel    *types.Selection
	shape  identity.Shape
	recv   ast.Expr
	args   []ast.Expr
	form   Form
}

// promotion is the embedded field path from a receiver operand to the field
// a promoted method is called on.
type promotion struct {
	path []string
	addr bool
}

// TryRewrite returns the replacement for call, or false when call must stay.
func (r *Rewriter) TryRewrite(call *ast.CallExpr, qualify Qualifier) (*Rewrite, bool) {
	if !r.enabled || !r.reg.Enabled() || call == nil {
		return nil, false
	}

	s, ok := r.classify(call)
	if !ok {
		return nil, false
	}

	if !r.resolver.OverridesTarget(s.callee, r.reg.TargetID()) {
		return nil, false
	}

	cand, ok := r.reg.Select(s.shape.Arity())
	if !ok {
		return nil, false
	}

	prom, ok := r.receiver(s, cand.Shape.RecvType)
	if !ok {
		return nil, false
	}

	if !r.wellTyped(s, call.Ellipsis.IsValid(), cand) {
		return nil, false
	}

	recv := receiverExpr(s.recv, prom)

	args := make([]ast.Expr, 0, len(s.args)+1)
	args = append(args, recv)
	args = append(args, s.args...)

	return &Rewrite{
		Original: call,
		Call: &ast.CallExpr{
			Fun:      funExpr(cand.Func, qualify),
			Args:     args,
			Ellipsis: call.Ellipsis,
		},
		Form:      s.form,
		Operand:   s.recv,
		Receiver:  recv,
		Path:      prom.path,
		AddressOf: prom.addr,
		Args:      s.args,
		Candidate: cand,
	}, true
}

// classify finds the callee and its receiver. The callee's declared receiver
// type must be a subtype of the target type.
func (r *Rewriter) classify(call *ast.CallExpr) (site, bool) {
	fn, sel := funcspec.ExtractFunc(r.info, call)
	if fn == nil {
		return site{}, false
	}

	var s site

	switch {
	case sel != nil && sel.Kind() == types.MethodVal:
		selExpr, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
		if !ok {
			return site{}, false
		}

		s = site{callee: fn, sel: sel, shape: identity.ShapeOf(fn), recv: selExpr.X, args: call.Args, form: FormMethod}

	case sel != nil && sel.Kind() == types.MethodExpr:
		if len(call.Args) == 0 {
			return site{}, false
		}

		s = site{callee: fn, sel: sel, shape: identity.ShapeOf(fn), recv: call.Args[0], args: call.Args[1:], form: FormMethodExpr}

	case sel == nil:
		shape, ok := identity.ExtensionShapeOf(fn)
		if !ok || len(call.Args) == 0 {
			return site{}, false
		}

		s = site{callee: fn, shape: shape, recv: call.Args[0], args: call.Args[1:], form: FormExtension}

	default:
		return site{}, false
	}

	if !typeutil.IsSubtypeOf(s.shape.RecvType, r.reg.Target()) {
		return site{}, false
	}

	return s, true
}

// receiver checks that the call's receiver value fits want. A method
// promoted through embedded structs is called on the embedded field, so the
// receiver value is that field, or its address when want is a pointer and the
// field is addressable.
func (r *Rewriter) receiver(s site, want types.Type) (promotion, bool) {
	if s.sel == nil || len(s.sel.Index()) < 2 {
		return promotion{}, r.assignable(s.recv, want)
	}

	idx := s.sel.Index()
	t := s.sel.Recv()
	viaPtr := isPointer(t)

	var p promotion

	for i, fi := range idx[:len(idx)-1] {
		if i > 0 && isPointer(t) {
			viaPtr = true
		}

		st, ok := typeutil.UnwrapPointer(t).Underlying().(*types.Struct)
		if !ok || fi >= st.NumFields() {
			return promotion{}, false
		}

		// Unexported fields may not be reachable from the call site.
		f := st.Field(fi)
		if !f.Exported() {
			return promotion{}, false
		}

		p.path = append(p.path, f.Name())
		t = f.Type()
	}

	switch {
	case types.AssignableTo(t, want):
	case types.AssignableTo(types.NewPointer(t), want) && (viaPtr || r.addressable(s.recv)):
		p.addr = true
	default:
		return promotion{}, false
	}

	return p, true
}

// wellTyped checks that the arguments stay valid with cand as callee.
func (r *Rewriter) wellTyped(s site, spread bool, cand registry.Candidate) bool {
	params := cand.Shape.Params
	n := len(params)
	variadic := cand.Shape.Variadic

	switch {
	case spread:
		if !variadic || len(s.args) != n {
			return false
		}
	case variadic:
		if len(s.args) < n-1 {
			return false
		}
	default:
		if len(s.args) != n {
			return false
		}
	}

	for i, arg := range s.args {
		want := params[min(i, n-1)]

		if variadic && !spread && i >= n-1 {
			slice, ok := want.Underlying().(*types.Slice)
			if !ok {
				return false
			}
			want = slice.Elem()
		}

		if !r.assignable(arg, want) {
			return false
		}
	}

	return true
}

func (r *Rewriter) assignable(e ast.Expr, want types.Type) bool {
	tv, ok := r.info.Types[e]
	if !ok || tv.Type == nil || !tv.IsValue() {
		return false
	}

	return types.AssignableTo(tv.Type, want)
}

func (r *Rewriter) addressable(e ast.Expr) bool {
	tv, ok := r.info.Types[e]

	return ok && tv.Addressable()
}

func isPointer(t types.Type) bool {
	_, ok := t.Underlying().(*types.Pointer)

	return ok
}

// receiverExpr spells the receiver of the new call.
func receiverExpr(operand ast.Expr, p promotion) ast.Expr {
	if len(p.path) == 0 {
		return operand
	}

	x := operand
	if needsParens(operand) {
		x = &ast.ParenExpr{X: operand}
	}

	for _, name := range p.path {
		x = &ast.SelectorExpr{X: x, Sel: ast.NewIdent(name)}
	}

	if p.addr {
		x = &ast.UnaryExpr{Op: token.AND, X: x}
	}

	return x
}

// needsParens reports whether e must be parenthesized before a selector.
func needsParens(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.CallExpr, *ast.IndexExpr, *ast.IndexListExpr,
		*ast.SliceExpr, *ast.TypeAssertExpr, *ast.ParenExpr, *ast.CompositeLit:
		return false
	default:
		return true
	}
}

func funExpr(fn *types.Func, qualify Qualifier) ast.Expr {
	name := ast.NewIdent(fn.Name())

	q := fn.Pkg().Name()
	if qualify != nil {
		q = qualify(fn.Pkg())
	}

	if q == "" {
		return name
	}

	return &ast.SelectorExpr{X: ast.NewIdent(q), Sel: name}
}
