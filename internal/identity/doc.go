// Package identity answers "which function is this?" for the rewriter.
//
// # Identity
//
// An [ID] is (owner, name): "android/content.Context" + "GetString" for a
// method, "github.com/datlag/tolgee/common" + "GetStringInstant" for a package
// function. [Of] may fail; [Matches] folds failure into false so callers
// never see it.
//
// # Shape
//
// [Shape] lists parameter types without the receiver. Methods have an
// instance receiver. Replacement functions are read with
// [ExtensionShapeOf], which moves the first parameter into the receiver slot:
//
//	func GetStringInstant(c content.Context, resID int, formatArgs ...any) string
//	// Receiver: extension (content.Context)
//	// Params:   [int, []any], variadic
//
// # Override Relation
//
// [Graph.Overridden] lists the methods a method shadows:
//
//	type Activity struct{ content.Context }
//	func (*Activity) GetString(resID int, formatArgs ...any) string
//	// overrides content.Context.GetString
package identity
