package addimport

// [BAD]: No import declarations
func title() string {
	return app.GetString(4) // want "content.Context.GetString call can be replaced with common.GetStringInstant"
}
