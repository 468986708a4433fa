package connector

import (
	"github.com/MKhalusova/uns-mcp/uns"
)

// MergeConfig computes the configuration to submit for an update: a copy of
// the current control-plane configuration with each explicitly supplied
// override applied. Fields absent from overrides keep their prior value, so
// an update never silently drops a previously set field. Credential fields
// are not part of the override surface and pass through unchanged.
func MergeConfig(current *uns.Config, overrides []uns.Field) *uns.Config {
	merged := current.Clone()
	for _, field := range overrides {
		merged.Set(field.Key, field.Value)
	}
	return merged
}
