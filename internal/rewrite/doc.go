// Package rewrite turns a call to the target method into a call to a
// replacement candidate.
//
// # Decision
//
// [Rewriter.TryRewrite] checks, in order, stopping at the first failure:
//
//  1. the rewriter and its registry are enabled
//  2. the callee's declared receiver is a subtype of the target type
//  3. the callee is the target method or transitively overrides it
//  4. a candidate with the same arity and a marker-typed first parameter exists
//  5. the receiver and arguments type-check against that candidate
//
// # Forms
//
//	c.GetString(42)                       → common.GetStringInstant(c, 42)
//	content.Context.GetString(c, 42)      → common.GetStringInstant(c, 42)
//	c.GetString(7, "a", "b")              → common.GetStringInstant(c, 7, "a", "b")
//	c.GetString(7, args...)               → common.GetStringInstant(c, 7, args...)
//
// A method promoted through embedded structs is called on the embedded field,
// so that field is the receiver, addressed when the candidate takes a pointer:
//
//	a.GetString(42)  // a *Activity embeds platform.Context
//	                                      → l10n.Lookup(&a.Context, 42)
//
// The receiver becomes the first argument; the remaining arguments are the
// original expressions in their original order. A fresh *ast.CallExpr is
// returned; the input node is never modified.
package rewrite
