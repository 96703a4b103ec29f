package getstring

import (
	"android/content"

	"github.com/datlag/tolgee/common"
)

// Activity inherits GetString from the embedded context.
type Activity struct {
	content.Context
}

// Screen overrides GetString.
type Screen struct {
	content.Context
}

func (s *Screen) GetString(resID int, formatArgs ...any) string {
	return s.Context.GetString(resID, formatArgs...) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// Node and Peer embed each other.
type Node struct {
	*Peer
	content.Context
}

type Peer struct {
	*Node
}

// Other has a GetString method but is not a context.
type Other struct{}

func (Other) GetString(resID int, formatArgs ...any) string {
	return ""
}

// ===== SHOULD REWRITE =====

// [BAD]: Resource id only
func badPlain(ctx content.Context) string {
	return ctx.GetString(42) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [BAD]: Resource id with format arguments
func badFormatArgs(ctx content.Context) string {
	return ctx.GetString(7, "a", "b") // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [BAD]: Spread format arguments
func badSpread(ctx content.Context, args []any) string {
	return ctx.GetString(7, args...) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [BAD]: Promoted through embedding
func badEmbedded(a Activity) string {
	return a.GetString(1) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [BAD]: Overriding method
func badOverride(s *Screen) string {
	return s.GetString(2) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [BAD]: Method expression
func badMethodExpr(ctx content.Context) string {
	return content.Context.GetString(ctx, 3) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [BAD]: Parenthesized callee
func badParenthesized(ctx content.Context) string {
	return (ctx.GetString)(4) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [BAD]: Lookup nested in the format arguments
func badNested(ctx content.Context) string {
	return ctx.GetString(5, ctx.GetString(6)) // want "content.Context.GetString call can be replaced with common.GetStringInstant" "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [BAD]: Embedding cycle
func badCycleNode(n Node) string {
	return n.GetString(10) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// [BAD]: Embedding cycle, reached through the other side
func badCyclePeer(p Peer) string {
	return p.GetString(11) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}

// ===== SHOULD NOT REWRITE =====

// [GOOD]: Not a context
func goodOther(o Other) string {
	return o.GetString(1)
}

// [GOOD]: Different method
func goodGetText(ctx content.Context) string {
	return ctx.GetText(1)
}

// [GOOD]: Already replaced
func goodReplaced(ctx content.Context) string {
	return common.GetStringInstant(ctx, 1) + common.GetStringKey(ctx, "title")
}

// [GOOD]: Method value held in a variable
func goodMethodValue(ctx content.Context) string {
	lookup := ctx.GetString
	return lookup(1)
}

// [GOOD]: Ignore directives
func goodIgnored(ctx content.Context) string {
	//tolgeerewrite:ignore
	a := ctx.GetString(8)
	b := ctx.GetString(9) //tolgeerewrite:ignore - keeps the platform lookup
	return a + b
}

// [BAD]: Ignore directive - completely unused
func badUnusedIgnore(ctx content.Context) string {
	//tolgeerewrite:ignore // want "unused tolgeerewrite:ignore directive"
	return ctx.GetText(1)
}
