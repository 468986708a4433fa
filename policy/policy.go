package policy

import (
	"golang.org/x/oauth2"
)

// Policy controls caller authentication. When an OAuth2 configuration is
// present, the caller namespace is derived from the bearer token and used to
// scope connector credential sets per tenant.
type Policy struct {

	// Oauth2Config identifies the authorization server callers authenticate against
	Oauth2Config *oauth2.Config `json:"oauth2,omitempty" yaml:"oauth2,omitempty"`

	// RequireIdentityToken indicates whether this policy mandates identity tokens
	RequireIdentityToken bool `json:"requireIdentityToken,omitempty" yaml:"requireIdentityToken,omitempty"`
}
