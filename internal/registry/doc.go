// Package registry resolves the rewrite target and its replacement candidates.
//
// # Resolution
//
// [Resolve] runs once per analysis pass. It searches the analysed package and
// everything it transitively imports:
//
//	target:      android/content.Context.GetString
//	candidates:  github.com/datlag/tolgee/common.GetStringInstant, ...
//
// The outcome is fail-open:
//
//	┌──────────────────────────────┬───────────────────────────────────┐
//	│ Missing                      │ Effect                            │
//	├──────────────────────────────┼───────────────────────────────────┤
//	│ target package/type/method   │ registry disabled, no rewrites    │
//	│ a candidate                  │ candidate skipped                 │
//	│ every candidate              │ matched calls left unchanged      │
//	└──────────────────────────────┴───────────────────────────────────┘
//
// # Selection
//
// [Registry.Select] walks candidates in configuration order and returns the
// first whose arity equals the call's and whose first parameter is the marker
// type. There is no further scoring.
package registry
