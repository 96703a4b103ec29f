// Package l10n is a stub of a translation-aware lookup.
package l10n

import "platform"

// Lookup returns the translated string for resID.
func Lookup(c *platform.Context, resID int) string {
	return c.GetString(resID)
}
