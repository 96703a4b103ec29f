// Package typeutil provides type queries used by the rewriter.
//
// # Subtyping
//
// Go has no inheritance, so "subtype of the target type" is answered
// structurally by [IsSubtypeOf]:
//
//	IsSubtypeOf(content.Context, Context)       // same declared type
//	IsSubtypeOf(*Activity, Context)             // Activity embeds content.Context
//	IsSubtypeOf(fakeContext, Context)           // implements the interface
//
// Embedding walks are cycle-safe: pointer embedding such as
//
//	type A struct{ *B }
//	type B struct{ *A }
//
// is legal Go and terminates.
//
// # Marker Types
//
// [TypeSpec] names the resource-id marker type ("int" or
// "pkg/path.ResID"). [TypeSpec.Matches] is exact: aliases are looked through,
// pointers and defined types with the same underlying type are not.
package typeutil
