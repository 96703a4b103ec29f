package typeutil

import (
	"go/types"
	"strings"
)

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
func UnwrapPointer(t types.Type) types.Type {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// NamedOf returns the named type behind t, looking through aliases and one
// level of pointer indirection. Returns nil for unnamed types.
func NamedOf(t types.Type) *types.Named {
	if t == nil {
		return nil
	}

	named, _ := types.Unalias(UnwrapPointer(types.Unalias(t))).(*types.Named)

	return named
}

// SameNamed reports whether a and b denote the same declared type,
// ignoring instantiation.
func SameNamed(a, b *types.Named) bool {
	if a == nil || b == nil {
		return false
	}

	return a.Origin().Obj() == b.Origin().Obj()
}

// MatchPkg checks if pkgPath matches targetPkg, allowing version suffixes.
func MatchPkg(pkgPath, targetPkg string) bool {
	if pkgPath == targetPkg {
		return true
	}
	// Check for version suffix like /v2, /v3, etc.
	prefix := targetPkg + "/v"
	if !strings.HasPrefix(pkgPath, prefix) {
		return false
	}
	rest := pkgPath[len(prefix):]
	for i := range len(rest) {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return len(rest) > 0
}

// IsSubtypeOf reports whether values of type t can stand in for super.
//
// t is a subtype when it is super itself (through a pointer), when it embeds
// super in a struct or interface (transitively, value or pointer embedding),
// or, for interface supertypes, when t or *t implements super.
func IsSubtypeOf(t types.Type, super *types.Named) bool {
	if t == nil || super == nil {
		return false
	}

	if iface, ok := super.Underlying().(*types.Interface); ok {
		if types.Implements(t, iface) {
			return true
		}

		if _, isPtr := types.Unalias(t).(*types.Pointer); !isPtr && !types.IsInterface(t) {
			if types.Implements(types.NewPointer(t), iface) {
				return true
			}
		}
	}

	return embeds(t, super, make(map[*types.TypeName]bool))
}

// embeds walks embedded fields; pointer embedding may form cycles.
func embeds(t types.Type, super *types.Named, visited map[*types.TypeName]bool) bool {
	named := NamedOf(t)
	if named == nil {
		return false
	}

	if SameNamed(named, super) {
		return true
	}

	obj := named.Origin().Obj()
	if visited[obj] {
		return false
	}
	visited[obj] = true

	switch u := named.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			f := u.Field(i)
			if f.Embedded() && embeds(f.Type(), super, visited) {
				return true
			}
		}

	case *types.Interface:
		for i := range u.NumEmbeddeds() {
			if embeds(u.EmbeddedType(i), super, visited) {
				return true
			}
		}
	}

	return false
}

// TypeSpec names a type by package path and name.
// An empty PkgPath denotes a predeclared type such as int.
type TypeSpec struct {
	PkgPath  string
	TypeName string
}

// ParseType parses "int" or "pkg/path.TypeName".
func ParseType(s string) TypeSpec {
	s = strings.TrimSpace(s)

	lastDot := strings.LastIndex(s, ".")
	if lastDot == -1 || strings.Contains(s[lastDot:], "/") {
		return TypeSpec{TypeName: s}
	}

	return TypeSpec{PkgPath: s[:lastDot], TypeName: s[lastDot+1:]}
}

// IsZero reports whether the spec names nothing.
func (s TypeSpec) IsZero() bool {
	return s.TypeName == ""
}

// Matches reports whether t is exactly the named type. Pointers do not match.
func (s TypeSpec) Matches(t types.Type) bool {
	if t == nil || s.IsZero() {
		return false
	}

	if s.PkgPath == "" {
		obj, ok := types.Universe.Lookup(s.TypeName).(*types.TypeName)
		if !ok {
			return false
		}

		return types.Identical(types.Unalias(t), types.Unalias(obj.Type()))
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return false
	}

	return MatchPkg(obj.Pkg().Path(), s.PkgPath) && obj.Name() == s.TypeName
}

// String returns the spec in its parseable form.
func (s TypeSpec) String() string {
	if s.PkgPath == "" {
		return s.TypeName
	}

	return s.PkgPath + "." + s.TypeName
}
