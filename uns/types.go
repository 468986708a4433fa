package uns

// ConnectorInfo is the control plane's record of a connector definition.
// The id is assigned at creation and never changes; name and config are
// mutable through update.
type ConnectorInfo struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Config *Config `json:"config"`
}

// CreateRequest registers a new connector of the given type.
type CreateRequest struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Config *Config `json:"config"`
}

// UpdateRequest replaces a connector's configuration. The connector type is
// fixed at creation and is not part of the update surface.
type UpdateRequest struct {
	Config *Config `json:"config"`
}
