package auth

import (
	"context"
	"fmt"

	"github.com/MKhalusova/uns-mcp/policy"
	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/mcp-protocol/authorization"
	"github.com/viant/scy/auth/jwt/verifier"
)

var defaultNs = "default"

// Service derives the caller namespace used to scope connector credential
// sets. Without an OAuth2 policy all callers share the default namespace.
type Service struct {
	Policy          *policy.Policy
	verifierService *verifier.Service
}

func (s *Service) Namespace(ctx context.Context) (string, error) {
	if s == nil || s.Policy == nil || s.Policy.Oauth2Config == nil {
		return defaultNs, nil
	}

	// The MCP auth middleware propagates the bearer token from the HTTP
	// layer under authorization.TokenKey, either as a plain string or as
	// *authorization.Token.
	tokenValue := ctx.Value(authorization.TokenKey)
	if tokenValue == nil {
		return "", fmt.Errorf("failed to get token from context: missing value")
	}

	var tokenString string
	switch tv := tokenValue.(type) {
	case string:
		tokenString = tv
	case *authorization.Token:
		tokenString = tv.Token
	default:
		return "", fmt.Errorf("failed to get token from context, unsupported type %T", tokenValue)
	}

	// Without a verifier service fall back to unverified claim extraction.
	// The namespace selects a credential set only; credential values never
	// leave the server.
	if s.verifierService == nil {
		if ns := unsafeSubjectOrEmail(tokenString); ns != "" {
			return ns, nil
		}
		return "", fmt.Errorf("unable to extract namespace from token")
	}

	claims, err := s.verifierService.VerifyClaims(ctx, tokenString)
	if err != nil {
		return "", err
	}

	namespace := claims.Email
	if namespace == "" {
		namespace = claims.Subject
	}
	if namespace == "" {
		return "", fmt.Errorf("namespace is empty in token claims")
	}
	return namespace, nil
}

// unsafeSubjectOrEmail extracts the "sub" or "email" claim without verifying
// the token signature. Only used as a fallback when no verifier service is
// configured.
func unsafeSubjectOrEmail(tokenString string) string {
	var claimMap jwt.MapClaims
	_, _, err := new(jwt.Parser).ParseUnverified(tokenString, &claimMap)
	if err != nil {
		return ""
	}
	if email, _ := claimMap["email"].(string); email != "" {
		return email
	}
	if sub, _ := claimMap["sub"].(string); sub != "" {
		return sub
	}
	return ""
}

func New(policy *policy.Policy) *Service {
	return &Service{Policy: policy}
}
