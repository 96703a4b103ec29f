// Package content is a stub of the platform context API.
package content

// Context gives access to application resources.
type Context interface {
	GetString(resID int, formatArgs ...any) string
	GetText(resID int) string
}
