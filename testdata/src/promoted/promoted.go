package promoted

import (
	"l10n"
	"platform"
)

// Activity embeds the context by value.
type Activity struct {
	platform.Context
}

// Fragment reaches the context through an embedded pointer.
type Fragment struct {
	*Activity
}

// [BAD]: Exact target
func badDirect(c *platform.Context) string {
	return c.GetString(1) // want "platform.Context.GetString call can be replaced with l10n.Lookup"
}

// [BAD]: Promoted through a pointer to the embedding struct
func badPromoted(a *Activity) string {
	return a.GetString(2) // want "platform.Context.GetString call can be replaced with l10n.Lookup"
}

// [BAD]: Promoted through an addressable embedding struct
func badAddressable(a Activity) string {
	return a.GetString(3) // want "platform.Context.GetString call can be replaced with l10n.Lookup"
}

// [BAD]: Promoted through two embedded structs
func badDeep(f Fragment) string {
	return f.GetString(4) // want "platform.Context.GetString call can be replaced with l10n.Lookup"
}

// [BAD]: Method expression on the embedding struct
func badMethodExpr(a *Activity) string {
	return (*Activity).GetString(a, 5) // want "platform.Context.GetString call can be replaced with l10n.Lookup"
}

// [GOOD]: Candidate itself
func goodCandidate(c *platform.Context) string {
	return l10n.Lookup(c, 6)
}
