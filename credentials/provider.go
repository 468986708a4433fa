// Package credentials abstracts where connector credential material comes
// from. Lifecycle operations receive a Provider explicitly instead of
// reading ambient process state, which keeps tests hermetic and allows
// per-tenant scoping.
package credentials

import (
	"context"
	"os"
)

// Provider resolves credential material by key. A missing credential yields
// an empty string; validation of required credentials is a control-plane
// concern.
type Provider interface {
	Lookup(ctx context.Context, key string) string
}

// Env resolves credentials from process environment variables.
type Env struct{}

func (Env) Lookup(_ context.Context, key string) string {
	return os.Getenv(key)
}

// Static resolves credentials from a fixed map. Used for configured
// per-namespace credential sets and in tests.
type Static map[string]string

func (s Static) Lookup(_ context.Context, key string) string {
	return s[key]
}

// NamespaceValues is the configuration shape for one namespace's credential
// set.
type NamespaceValues struct {
	Namespace string            `json:"namespace"`
	Values    map[string]string `json:"values"`
}

// Scoped selects a per-namespace provider based on the caller identity
// derived from the request context, falling back when the namespace has no
// dedicated credential set or the scoped set misses the key.
type Scoped struct {
	// Resolve derives the caller namespace from the request context.
	Resolve func(ctx context.Context) (string, error)
	// Namespaces maps namespace names to their credential sets.
	Namespaces map[string]Provider
	// Fallback serves lookups that no namespace set answers.
	Fallback Provider
}

func (s *Scoped) Lookup(ctx context.Context, key string) string {
	if s.Resolve != nil && len(s.Namespaces) > 0 {
		if namespace, err := s.Resolve(ctx); err == nil {
			if provider, ok := s.Namespaces[namespace]; ok {
				if value := provider.Lookup(ctx, key); value != "" {
					return value
				}
			}
		}
	}
	if s.Fallback == nil {
		return ""
	}
	return s.Fallback.Lookup(ctx, key)
}

// NewScoped assembles a Scoped provider from configured namespace credential
// sets with the process environment as fallback.
func NewScoped(resolve func(ctx context.Context) (string, error), sets []*NamespaceValues) *Scoped {
	namespaces := map[string]Provider{}
	for _, set := range sets {
		if set == nil || set.Namespace == "" {
			continue
		}
		namespaces[set.Namespace] = Static(set.Values)
	}
	return &Scoped{Resolve: resolve, Namespaces: namespaces, Fallback: Env{}}
}
