package connector

import (
	"context"
	"fmt"
	"reflect"

	"github.com/MKhalusova/uns-mcp/connector/meta"
	"github.com/google/uuid"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/structology/conv"
)

// elicitCreateInput asks the client for the connector details a create call
// was missing. The requested schema is generated from the typed input
// struct, so credential fields can never be part of the form. The accepted
// form content is mapped back into the same input value.
func (s *Service) elicitCreateInput(ctx context.Context, metaCfg *meta.Config, input CreateInput) error {
	if s.mcpClient == nil || !s.mcpClient.Implements(schema.MethodElicitationCreate) {
		return fmt.Errorf("client does not support elicitation")
	}
	props, required := schema.StructToProperties(reflect.TypeOf(input).Elem())
	if name := input.ConnectorName(); name != "" {
		if nameProp, ok := props["name"]; ok {
			nameProp["default"] = name
		}
	}
	flatProps := make(map[string]interface{}, len(props))
	for key, value := range props {
		flatProps[key] = value
	}

	elicitResult, err := s.mcpClient.Elicit(ctx, &jsonrpc.TypedRequest[*schema.ElicitRequest]{Request: &schema.ElicitRequest{
		Params: schema.ElicitRequestParams{
			ElicitationId: uuid.New().String(),
			Message:       fmt.Sprintf("Please provide details for the %s connector", metaCfg.Title()),
			RequestedSchema: schema.ElicitRequestParamsRequestedSchema{
				Type:       "object",
				Properties: flatProps,
				Required:   required,
			},
		}}})
	if err != nil {
		return err
	}
	if elicitResult == nil || elicitResult.Action != schema.ElicitResultActionAccept {
		return fmt.Errorf("user declined to provide connector details")
	}
	return mapToStruct(elicitResult.Content, input)
}

// mapToStruct fills a struct pointer with values from a generic map,
// honouring JSON tag names.
func mapToStruct(m map[string]interface{}, out interface{}) error {
	return conv.NewConverter(conv.DefaultOptions()).Convert(m, out)
}
