package multicandidate

import (
	"android/content"

	"github.com/datlag/tolgee/common"
)

// Legacy shadows GetString with a narrower signature.
type Legacy struct {
	content.Context
}

func (Legacy) GetString(resID int) string {
	return ""
}

// [BAD]: Candidates without a resource id parameter are skipped
func badSkipsKeyLookup(ctx content.Context) string {
	return ctx.GetString(1, "x") // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [GOOD]: Selected candidate does not accept the receiver
func goodLegacy(l Legacy) string {
	return l.GetString(1)
}

// [GOOD]: Candidate itself
func goodCandidate(ctx content.Context) string {
	return common.GetStringKey(ctx, "title")
}
