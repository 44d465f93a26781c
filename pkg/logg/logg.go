// Package logg holds the structured log field keys shared across layers.
package logg

const (
	Layer     = "layer"
	Operation = "op"
	Session   = "session"
	Action    = "action"
	Button    = "button"
	App       = "app"
	Transport = "transport"
)
