package notarget

// Context looks like the platform context but is a different type.
type Context interface {
	GetString(resID int, formatArgs ...any) string
}

// [GOOD]: Target package is not imported
func goodLookalike(ctx Context) string {
	return ctx.GetString(42)
}
