package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	testCases := []struct {
		connectorType string
		role          Role
		wantTitle     string
	}{
		{connectorType: "s3", role: RoleSource, wantTitle: "S3 Source"},
		{connectorType: "s3", role: RoleDestination, wantTitle: "S3 Destination"},
		{connectorType: "azure", role: RoleSource, wantTitle: "Azure Source"},
		{connectorType: "pinecone", role: RoleDestination, wantTitle: "Pinecone Destination"},
		{connectorType: "weaviate", role: RoleDestination, wantTitle: "Weaviate Destination"},
	}
	for _, tc := range testCases {
		config := Lookup(tc.connectorType, tc.role)
		assert.NotNil(t, config, tc.wantTitle)
		assert.EqualValues(t, tc.wantTitle, config.Title())
	}

	assert.Nil(t, Lookup("pinecone", RoleSource))
	assert.Nil(t, Lookup("unknown", RoleDestination))
}

// Every secret field must be one the type actually carries, and every
// credential must be resolvable from a named provider key.
func TestConfigsConsistency(t *testing.T) {
	for _, config := range GetConfigs() {
		assert.NotEmpty(t, config.Type)
		assert.NotEmpty(t, config.Label)
		assert.NotEmpty(t, config.Required, config.Title())

		for _, credential := range config.Credentials {
			assert.NotEmpty(t, credential.Field, config.Title())
			assert.NotEmpty(t, credential.Key, config.Title())
		}
		for _, secret := range config.SecretFields {
			assert.True(t, config.IsCredential(secret),
				"%s: secret field %s is not credential-sourced", config.Title(), secret)
		}
		for _, required := range config.Required {
			assert.False(t, config.IsCredential(required),
				"%s: required field %s cannot be a credential", config.Title(), required)
		}
	}
}
