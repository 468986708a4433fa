package main

// Options defines CLI flags for the uns-mcp server.
type Options struct {
	HTTPAddr   string `short:"a" long:"addr"  description:"HTTP listen address (empty disables HTTP)"`
	Stdio      bool   `short:"s" long:"stdio" description:"Enable stdio transport"`
	ConfigPath string `short:"c" long:"config" description:"Config file URL (file://, s3:// ...) with JSON content"`

	// BaseURL overrides the control-plane endpoint from config (useful for
	// self-hosted deployments).
	BaseURL string `short:"u" long:"base-url" description:"Control plane base URL"`
	APIKey  string `short:"k" long:"api-key" description:"Control plane API key (overrides config and UNSTRUCTURED_API_KEY)"`
}
