package addimport

import "android/content"

// [BAD]: Package name shadowed at the call site, reported without a fix
func shadowed(ctx content.Context) string {
	common := "!"
	return ctx.GetString(3) + common // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}
