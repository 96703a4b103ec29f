package nocandidate

import (
	"android/content"

	"github.com/datlag/tolgee/common"
)

// [GOOD]: No replacement resolves
func goodPlain(ctx content.Context) string {
	return ctx.GetString(42)
}

// [GOOD]: No replacement resolves
func goodFormatArgs(ctx content.Context) string {
	return ctx.GetString(7, "a", "b")
}

// [GOOD]: Existing helper
func goodKey(ctx content.Context) string {
	return common.GetStringKey(ctx, "title")
}
