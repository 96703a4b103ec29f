package gettext

import (
	"android/content"

	"github.com/datlag/tolgee/common"
)

// [BAD]: Configured target
func badGetText(ctx content.Context) string {
	return ctx.GetText(3) // want "content.Context.GetText call can be replaced with common.GetTextInstant"
}

// [GOOD]: Not the configured target
func goodGetString(ctx content.Context) string {
	return ctx.GetString(3)
}

// [GOOD]: Candidate itself
func goodCandidate(ctx content.Context) string {
	return common.GetTextInstant(ctx, 3)
}
