package addimport

import "android/content"

// [BAD]: Single import declaration
func single(ctx content.Context) string {
	return ctx.GetString(1) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}
