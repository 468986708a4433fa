// Package meta holds the declarative per-connector-type table: which fields
// a type carries, which of them are credentials and from which environment
// keys they are sourced, and which must never be displayed unmasked.
package meta

// Role distinguishes source and destination connectors. The two roles share
// the same lifecycle mechanics but live under separate control-plane
// collections.
type Role string

const (
	RoleSource      Role = "source"
	RoleDestination Role = "destination"
)

// Title returns the capitalized role used in report headers.
func (r Role) Title() string {
	if r == RoleDestination {
		return "Destination"
	}
	return "Source"
}

type (
	// Credential maps a configuration field to the credential-provider key
	// it is populated from. Credential fields are always set by the builder
	// and never accepted from callers.
	Credential struct {
		Field string
		Key   string
	}

	// Config describes one connector type.
	Config struct {
		// Type is the control-plane type tag, e.g. "s3".
		Type string
		// Role selects the sources or destinations collection.
		Role Role
		// Label is the human-facing name used in report headers.
		Label string
		// Required lists caller-supplied fields that must be non-empty at
		// creation time.
		Required []string
		// Credentials lists credential fields in declaration order.
		Credentials []Credential
		// SecretFields names config fields whose values are masked in any
		// rendered output.
		SecretFields []string
	}
)

// Title combines label and role, e.g. "S3 Source".
func (c *Config) Title() string {
	return c.Label + " " + c.Role.Title()
}

// Subject is the lower-case form used in diagnostics, e.g. "S3 source".
func (c *Config) Subject() string {
	return c.Label + " " + string(c.Role)
}

// IsSecret reports whether the field belongs to the type's secret set.
func (c *Config) IsSecret(field string) bool {
	for _, candidate := range c.SecretFields {
		if candidate == field {
			return true
		}
	}
	return false
}

// IsCredential reports whether the field is populated from the credential
// provider.
func (c *Config) IsCredential(field string) bool {
	for _, credential := range c.Credentials {
		if credential.Field == field {
			return true
		}
	}
	return false
}

// GetConfigs returns the built-in connector type metadata.
func GetConfigs() []*Config {
	return []*Config{
		{
			Type:     "s3",
			Role:     RoleSource,
			Label:    "S3",
			Required: []string{"remote_url"},
			Credentials: []Credential{
				{Field: "key", Key: "AWS_KEY"},
				{Field: "secret", Key: "AWS_SECRET"},
				{Field: "token", Key: "AWS_TOKEN"},
			},
			SecretFields: []string{"secret", "token"},
		},
		{
			Type:     "azure",
			Role:     RoleSource,
			Label:    "Azure",
			Required: []string{"remote_url"},
			Credentials: []Credential{
				{Field: "account_name", Key: "AZURE_ACCOUNT_NAME"},
				{Field: "account_key", Key: "AZURE_ACCOUNT_KEY"},
				{Field: "sas_token", Key: "AZURE_SAS_TOKEN"},
				{Field: "connection_string", Key: "AZURE_CONNECTION_STRING"},
			},
			SecretFields: []string{"account_key", "sas_token", "connection_string"},
		},
		{
			Type:     "s3",
			Role:     RoleDestination,
			Label:    "S3",
			Required: []string{"remote_url"},
			Credentials: []Credential{
				{Field: "key", Key: "AWS_ACCESS_KEY_ID"},
				{Field: "secret", Key: "AWS_SECRET_ACCESS_KEY"},
				{Field: "token", Key: "AWS_SESSION_TOKEN"},
			},
			SecretFields: []string{"secret", "token"},
		},
		{
			Type:     "pinecone",
			Role:     RoleDestination,
			Label:    "Pinecone",
			Required: []string{"index_name"},
			Credentials: []Credential{
				{Field: "key", Key: "PINECONE_API_KEY"},
			},
			SecretFields: []string{"key"},
		},
		{
			Type:     "weaviate",
			Role:     RoleDestination,
			Label:    "Weaviate",
			Required: []string{"cluster_url"},
			Credentials: []Credential{
				{Field: "key", Key: "WEAVIATE_API_KEY"},
			},
			SecretFields: []string{"key"},
		},
	}
}

// Lookup selects the Config matching a type tag and role, or nil.
func Lookup(connectorType string, role Role) *Config {
	for _, config := range GetConfigs() {
		if config.Type == connectorType && config.Role == role {
			return config
		}
	}
	return nil
}
