package addimport

import (
	"android/content"

	tg "github.com/datlag/tolgee/common"
)

// [BAD]: Renamed import is reused
func renamed(ctx content.Context) string {
	return ctx.GetString(5) + tg.GetStringKey(ctx, "suffix") // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}
