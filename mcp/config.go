package mcp

import (
	"github.com/MKhalusova/uns-mcp/credentials"
	"github.com/MKhalusova/uns-mcp/policy"
	"github.com/viant/scy"
)

type (
	// Config is the top-level server configuration.
	Config struct {
		// Client configures access to the control plane.
		Client *ClientConfig `json:"client,omitempty"`

		// Policy controls caller authentication and namespace derivation.
		Policy *policy.Policy `json:"policy,omitempty"`

		// Credentials lists per-namespace connector credential sets. Callers
		// whose namespace has no entry fall back to the process environment.
		Credentials []*credentials.NamespaceValues `json:"credentials,omitempty"`
	}

	// ClientConfig locates the control plane and its API key. The key can be
	// inlined, stored as a scy basic-credential resource (key in Password),
	// or left to the UNSTRUCTURED_API_KEY environment variable.
	ClientConfig struct {
		BaseURL      string        `json:"baseURL,omitempty"`
		APIKey       string        `json:"apiKey,omitempty"`
		APIKeySecret *scy.Resource `json:"apiKeySecret,omitempty"`
	}
)

// Init fills runtime defaults so nested lookups never hit a nil struct.
func (c *Config) Init() {
	if c.Client == nil {
		c.Client = &ClientConfig{}
	}
	if c.Policy == nil {
		c.Policy = &policy.Policy{}
	}
}
