package getstringoff

import "android/content"

// [GOOD]: Rewriting is disabled
func goodPlain(ctx content.Context) string {
	return ctx.GetString(42)
}

// [GOOD]: Rewriting is disabled
func goodFormatArgs(ctx content.Context) string {
	return ctx.GetString(7, "a", "b")
}

// [GOOD]: Directives are not checked while disabled
func goodIgnored(ctx content.Context) string {
	//tolgeerewrite:ignore
	return ctx.GetText(1)
}
