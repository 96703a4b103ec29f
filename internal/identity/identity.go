package identity

import (
	"go/types"

	"github.com/datlag/tolgeerewrite/internal/typeutil"
)

// ID identifies a function by its owner and name.
// Owner is "pkg/path.Type" for methods and "pkg/path" for package functions.
type ID struct {
	Owner string
	Name  string
}

// String returns "Owner.Name".
func (id ID) String() string {
	return id.Owner + "." + id.Name
}

// Method returns the identity of method name declared on pkgPath.typeName.
func Method(pkgPath, typeName, name string) ID {
	return ID{Owner: pkgPath + "." + typeName, Name: name}
}

// Of resolves the identity of fn.
//
// Resolution fails for functions without a package (universe and synthetic
// objects), blank names, and methods whose receiver is not a named type,
// such as methods of interface literals.
func Of(fn *types.Func) (ID, bool) {
	if fn == nil || fn.Pkg() == nil || fn.Name() == "_" {
		return ID{}, false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return ID{}, false
	}

	recv := sig.Recv()
	if recv == nil {
		return ID{Owner: fn.Pkg().Path(), Name: fn.Name()}, true
	}

	named := typeutil.NamedOf(recv.Type())
	if named == nil {
		return ID{}, false
	}

	obj := named.Origin().Obj()
	if obj.Pkg() == nil {
		return ID{}, false
	}

	return Method(obj.Pkg().Path(), obj.Name(), fn.Name()), true
}

// Matches reports whether fn resolves to target.
// A failed resolution never matches.
func Matches(fn *types.Func, target ID) bool {
	id, ok := Of(fn)

	return ok && id == target
}
