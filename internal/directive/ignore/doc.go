// Package ignore provides //tolgeerewrite:ignore directive parsing.
//
// # Directive Placement
//
// The directive can appear on the line before or the same line:
//
//	//tolgeerewrite:ignore
//	label := ctx.GetString(R.string.app_name)   // not rewritten
//
//	label := ctx.GetString(R.string.app_name)   //tolgeerewrite:ignore - keep platform text
//
// # Unused Directives
//
// Directives are marked when they suppress a rewrite. Those left unmarked
// after the pass are reported so stale directives do not accumulate.
package ignore
