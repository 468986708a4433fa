package mcp

import (
	"context"
	"os"
	"reflect"

	"github.com/MKhalusova/uns-mcp/auth"
	"github.com/MKhalusova/uns-mcp/connector"
	"github.com/MKhalusova/uns-mcp/credentials"
	"github.com/MKhalusova/uns-mcp/uns"
	"github.com/viant/mcp-protocol/client"
	"github.com/viant/scy"
	"github.com/viant/scy/cred"
)

// Service wires the control-plane client, the credential provider and the
// auth service together and builds per-session connector services.
type Service struct {
	config *Config
	client uns.Client
	creds  credentials.Provider
	auth   *auth.Service
}

// NewConnector builds a connector lifecycle service bound to one MCP
// session's client operations (needed for elicitation).
func (s *Service) NewConnector(operations client.Operations) *connector.Service {
	return connector.NewService(s.client, s.creds, operations)
}

// Auth returns the underlying authentication service.
func (s *Service) Auth() *auth.Service {
	return s.auth
}

// NewService builds the toolbox service from configuration. The control
// plane API key is resolved once, at construction.
func NewService(config *Config) (*Service, error) {
	if config == nil {
		config = &Config{}
	}
	config.Init()

	apiKey, err := resolveAPIKey(config.Client)
	if err != nil {
		return nil, err
	}

	authService := auth.New(config.Policy)
	return &Service{
		config: config,
		client: uns.NewClient(&uns.Options{BaseURL: config.Client.BaseURL, APIKey: apiKey}),
		creds:  credentials.NewScoped(authService.Namespace, config.Credentials),
		auth:   authService,
	}, nil
}

// resolveAPIKey prefers an inline key, then a scy-managed secret, then the
// UNSTRUCTURED_API_KEY environment variable. An empty result is allowed;
// the control plane rejects unauthenticated requests on its own.
func resolveAPIKey(config *ClientConfig) (string, error) {
	if config.APIKey != "" {
		return config.APIKey, nil
	}
	if config.APIKeySecret != nil {
		resource := *config.APIKeySecret
		resource.SetTarget(reflect.TypeOf(&cred.Basic{}))
		secret, err := scy.New().Load(context.Background(), &resource)
		if err != nil {
			return "", err
		}
		return secret.Expand("$Password"), nil
	}
	return os.Getenv("UNSTRUCTURED_API_KEY"), nil
}
