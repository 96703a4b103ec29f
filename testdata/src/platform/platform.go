// Package platform is a stub of a struct-based resource context.
package platform

// Context resolves resource ids.
type Context struct {
	strings map[int]string
}

func (c *Context) GetString(resID int) string {
	return c.strings[resID]
}
