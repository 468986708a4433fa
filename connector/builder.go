package connector

import (
	"context"
	"fmt"

	"github.com/MKhalusova/uns-mcp/connector/meta"
	"github.com/MKhalusova/uns-mcp/credentials"
	"github.com/MKhalusova/uns-mcp/uns"
)

// BuildConfig assembles a full connector configuration for creation: caller
// fields copied verbatim in declaration order, followed by every credential
// field of the type resolved through the provider. Caller input can never
// populate a credential field; any credential-named key is discarded before
// the provider values are applied.
func BuildConfig(ctx context.Context, metaCfg *meta.Config, fields []uns.Field, creds credentials.Provider) (*uns.Config, error) {
	config := uns.NewConfig()
	for _, field := range fields {
		if metaCfg.IsCredential(field.Key) {
			continue
		}
		config.Set(field.Key, field.Value)
	}
	for _, required := range metaCfg.Required {
		if isEmpty(valueOf(config, required)) {
			return nil, &OpError{
				Kind:    KindStructural,
				Op:      "creating",
				Subject: metaCfg.Subject(),
				Err:     fmt.Errorf("%s is required", required),
			}
		}
	}
	for _, credential := range metaCfg.Credentials {
		config.Set(credential.Field, creds.Lookup(ctx, credential.Key))
	}
	return config, nil
}

func valueOf(config *uns.Config, key string) interface{} {
	value, _ := config.Get(key)
	return value
}
