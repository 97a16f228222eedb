package domain

// Parameter is a named configuration value owned by the remote configuration
// service. Value is an opaque string; for some parameters it is itself
// JSON-encoded (EntityStatus, jwtSecretKey).
type Parameter struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"parameterName"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Well-known parameter names served by the configuration service.
const (
	ParamEntityStatus = "EntityStatus"
	ParamJWTSecretKey = "jwtSecretKey"
)
