// Package funcspec provides shared function specification parsing and matching.
package funcspec

import (
	"go/ast"
	"go/types"
	"strings"
	"unicode"

	"github.com/datlag/tolgeerewrite/internal/typeutil"
)

// Spec holds parsed components of a function specification.
// Format: "pkg/path.Func" or "pkg/path.Type.Method".
type Spec struct {
	PkgPath  string
	TypeName string // empty for package-level functions
	FuncName string
}

// Parse parses a single function specification string into components.
// Format: "pkg/path.Func" or "pkg/path.Type.Method".
func Parse(s string) Spec {
	spec := Spec{}

	lastDot := strings.LastIndex(s, ".")
	if lastDot == -1 {
		spec.FuncName = s

		return spec
	}

	spec.FuncName = s[lastDot+1:]
	prefix := s[:lastDot]

	// Check if there's another dot (indicating Type.Method)
	// Type names start with uppercase in Go.
	secondLastDot := strings.LastIndex(prefix, ".")
	if secondLastDot != -1 && !strings.Contains(prefix[secondLastDot:], "/") {
		possibleType := prefix[secondLastDot+1:]
		if len(possibleType) > 0 && unicode.IsUpper(rune(possibleType[0])) {
			spec.TypeName = possibleType
			spec.PkgPath = prefix[:secondLastDot]

			return spec
		}
	}

	spec.PkgPath = prefix

	return spec
}

// ParseList parses a comma-separated list of specifications, keeping order.
// Empty entries and entries without a package path are dropped.
func ParseList(s string) []Spec {
	var specs []Spec

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		spec := Parse(part)
		if spec.PkgPath == "" {
			continue
		}

		specs = append(specs, spec)
	}

	return specs
}

// IsMethod reports whether the specification names a method.
func (s Spec) IsMethod() bool {
	return s.TypeName != ""
}

// Matches checks if a types.Func matches this specification.
func (s Spec) Matches(fn *types.Func) bool {
	if fn == nil || fn.Name() != s.FuncName {
		return false
	}

	pkg := fn.Pkg()
	if pkg == nil || !typeutil.MatchPkg(pkg.Path(), s.PkgPath) {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	recv := sig.Recv()

	if s.TypeName == "" {
		// Package-level function: should have no receiver
		return recv == nil
	}

	if recv == nil {
		return false
	}

	named := typeutil.NamedOf(recv.Type())
	if named == nil {
		return false
	}

	return named.Obj().Name() == s.TypeName
}

// FullName returns a human-readable name for display.
// For methods: "content.Context.GetString"
// For functions: "common.GetStringInstant"
func (s Spec) FullName() string {
	pkgName := shortPkgName(s.PkgPath)
	if s.TypeName == "" {
		return pkgName + "." + s.FuncName
	}

	return pkgName + "." + s.TypeName + "." + s.FuncName
}

// String returns the specification in its parseable form.
func (s Spec) String() string {
	if s.TypeName == "" {
		return s.PkgPath + "." + s.FuncName
	}

	return s.PkgPath + "." + s.TypeName + "." + s.FuncName
}

// shortPkgName returns the last component of a package path.
func shortPkgName(pkgPath string) string {
	if idx := strings.LastIndex(pkgPath, "/"); idx >= 0 {
		return pkgPath[idx+1:]
	}

	return pkgPath
}

// ExtractFunc extracts the types.Func from a call expression.
// Returns nil if the callee cannot be determined statically.
// The selection is non-nil for method values and method expressions.
func ExtractFunc(info *types.Info, call *ast.CallExpr) (*types.Func, *types.Selection) {
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		if f, ok := info.ObjectOf(fun).(*types.Func); ok {
			return f, nil
		}

	case *ast.SelectorExpr:
		if sel := info.Selections[fun]; sel != nil {
			if f, ok := sel.Obj().(*types.Func); ok {
				return f, sel
			}

			return nil, nil
		}

		if f, ok := info.ObjectOf(fun.Sel).(*types.Func); ok {
			return f, nil
		}
	}

	return nil, nil
}
