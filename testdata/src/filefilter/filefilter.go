package filefilter

import (
	"android/content"

	"github.com/datlag/tolgee/common"
)

// [BAD]: Regular file
func badRegular(ctx content.Context) string {
	return ctx.GetString(1) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [GOOD]: Candidate itself
func goodCandidate(ctx content.Context) string {
	return common.GetStringInstant(ctx, 1)
}
