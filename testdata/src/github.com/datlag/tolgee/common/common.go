// Package common is a stub of the Tolgee lookup helpers.
package common

import "android/content"

// GetStringInstant returns the translated string for resID.
func GetStringInstant(c content.Context, resID int, formatArgs ...any) string {
	return c.GetString(resID, formatArgs...)
}

// GetStringKey returns the translated string for key.
func GetStringKey(c content.Context, key string, formatArgs ...any) string {
	return key
}

// GetTextInstant returns the translated text for resID.
func GetTextInstant(c content.Context, resID int) string {
	return c.GetText(resID)
}
