package addimport

import (
	"android/content")

// [BAD]: Closing parenthesis on the last import line
func inline(ctx content.Context) string {
	return ctx.GetString(6) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}
