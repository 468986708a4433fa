package mcp

import (
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// buildErrorResult constructs a CallToolResult with IsError set and the
// diagnostic text placed in the Text field. Lifecycle failures surface this
// way instead of as protocol errors, so automated callers can rely on the
// stable "Error <op> …" prefixes.
func buildErrorResult(errMsg string) (*schema.CallToolResult, *jsonrpc.Error) {
	isErr := true
	return &schema.CallToolResult{
		IsError: &isErr,
		Content: []schema.CallToolResultContentElem{schema.TextContent{Type: "text", Text: errMsg}},
	}, nil
}

// buildReportResult wraps a rendered connector report as a plain-text tool
// result.
func buildReportResult(report string) (*schema.CallToolResult, *jsonrpc.Error) {
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{schema.TextContent{Type: "text", Text: report}},
	}, nil
}
