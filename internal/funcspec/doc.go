// Package funcspec parses function specifications from flag values and
// matches them against types.Func objects.
//
// # Specification Format
//
//	pkg/path.FuncName           # Package-level function
//	pkg/path.TypeName.Method    # Method on type
//
// Examples:
//
//	android/content.Context.GetString
//	github.com/datlag/tolgee/common.GetStringInstant
//
// # Parsing
//
//	spec := funcspec.Parse("android/content.Context.GetString")
//	// spec.PkgPath  = "android/content"
//	// spec.TypeName = "Context"
//	// spec.FuncName = "GetString"
//
// [ParseList] parses the comma-separated form used by the -replacement flag
// and keeps the order of the entries, which is the order candidates are tried.
//
// # Matching
//
// [Spec.Matches] compares package path (allowing /vN suffixes), receiver type
// name and function name. [ExtractFunc] resolves the callee of a call
// expression, returning the selection for method values and method
// expressions.
package funcspec
