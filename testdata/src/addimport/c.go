package addimport

import (
	"android/content"
)

// [BAD]: Grouped import declaration
func grouped(ctx content.Context) string {
	return ctx.GetString(2, "x") // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}
