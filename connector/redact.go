package connector

import (
	"fmt"
	"strings"

	"github.com/MKhalusova/uns-mcp/connector/meta"
	"github.com/MKhalusova/uns-mcp/uns"
)

// Mask replaces every non-empty secret-field value in rendered output.
const Mask = "********"

// RenderReport formats a connector for human consumption. Fields are listed
// in the configuration's insertion order and values of the type's secret
// fields are masked. An empty secret value is shown as-is: nothing is
// disclosed by leaving it unmasked, though it is not proof the remote value
// is empty. Pure function of its input.
func RenderReport(metaCfg *meta.Config, action string, info *uns.ConnectorInfo) string {
	lines := []string{
		fmt.Sprintf("%s Connector %s:", metaCfg.Title(), action),
		fmt.Sprintf("Name: %s", info.Name),
		fmt.Sprintf("ID: %s", info.ID),
		"Configuration:",
	}
	if info.Config != nil {
		for _, key := range info.Config.Keys() {
			value, _ := info.Config.Get(key)
			if metaCfg.IsSecret(key) && !isEmpty(value) {
				value = Mask
			}
			lines = append(lines, fmt.Sprintf("  %s: %v", key, value))
		}
	}
	return strings.Join(lines, "\n")
}

// isEmpty mirrors the truthiness check used for masking: nil, empty string
// and false count as empty.
func isEmpty(value interface{}) bool {
	switch actual := value.(type) {
	case nil:
		return true
	case string:
		return actual == ""
	case bool:
		return !actual
	}
	return false
}
