package main

// Application bootstrap for the uns-mcp command: CLI parsing, configuration
// loading, MCP server construction and graceful shutdown, each kept in a
// focused helper.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhalusova/uns-mcp/mcp"
	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	"github.com/viant/mcp-protocol/authorization"
	"github.com/viant/mcp-protocol/oauth2/meta"
	"github.com/viant/mcp-protocol/schema"
	mcpsrv "github.com/viant/mcp/server"
	serverauth "github.com/viant/mcp/server/auth"
	"github.com/viant/scy/auth/flow"
)

func run(argv []string) error {
	opts, err := parseFlags(argv)
	if err != nil || opts == nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	cfg.Init()

	service, err := mcp.NewService(cfg)
	if err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}
	srvOpts := append(coreOptions(service), oauthOptions(cfg)...)

	srv, err := mcpsrv.New(srvOpts...)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpSrv := startHTTP(ctx, srv, opts.HTTPAddr)
	stdioCh := startStdio(ctx, srv, opts.Stdio)

	if err := waitForShutdown(ctx, stdioCh); err != nil {
		return err
	}
	return gracefulShutdown(httpSrv)
}

// -------------------------------------------------------------------------
// Helpers

func parseFlags(args []string) (*Options, error) {
	opts := &Options{}
	_, err := flags.ParseArgs(opts, args)
	if err == nil {
		return opts, nil
	}
	// flags returns *flags.Error for help – treat as non error.
	var fe *flags.Error
	if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
		return nil, nil
	}
	return nil, err
}

// loadConfig reads the JSON config from the supplied URL (any afs-supported
// scheme) or assembles an empty default, then applies CLI overrides.
func loadConfig(opts *Options) (*mcp.Config, error) {
	cfg := &mcp.Config{}
	if opts.ConfigPath != "" {
		fs := afs.New()
		data, err := fs.DownloadWithURL(context.Background(), opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Client == nil {
		cfg.Client = &mcp.ClientConfig{}
	}
	if opts.BaseURL != "" {
		cfg.Client.BaseURL = opts.BaseURL
	}
	if opts.APIKey != "" {
		cfg.Client.APIKey = opts.APIKey
	}
	return cfg, nil
}

// coreOptions returns server options that are always enabled.
func coreOptions(service *mcp.Service) []mcpsrv.Option {
	return []mcpsrv.Option{
		mcpsrv.WithNewHandler(mcp.NewHandler(service)),
		mcpsrv.WithImplementation(schema.Implementation{Name: "uns-mcp", Version: "1.0"}),
	}
}

// oauthOptions conditionally builds auth-related server options.
func oauthOptions(cfg *mcp.Config) []mcpsrv.Option {
	if cfg == nil || cfg.Policy == nil || cfg.Policy.Oauth2Config == nil {
		return nil
	}

	authPolicy := &authorization.Policy{
		Global: &authorization.Authorization{
			UseIdToken: cfg.Policy.RequireIdentityToken,
			ProtectedResourceMetadata: &meta.ProtectedResourceMetadata{
				AuthorizationServers: []string{cfg.Policy.Oauth2Config.Endpoint.AuthURL},
			},
		},
		ExcludeURI: "/sse", // SSE stream stays unauthenticated
	}

	bff := &serverauth.BackendForFrontend{
		Client:                      cfg.Policy.Oauth2Config,
		AuthorizationExchangeHeader: flow.AuthorizationExchangeHeader,
	}
	authSvc, err := serverauth.New(&serverauth.Config{Policy: authPolicy, BackendForFrontend: bff})
	if err != nil {
		log.Printf("warning: failed to initialise auth service – running without OAuth: %v", err)
		return nil
	}
	return []mcpsrv.Option{
		mcpsrv.WithAuthorizer(authSvc.Middleware),
		mcpsrv.WithProtectedResourcesHandler(authSvc.ProtectedResourcesHandler),
	}
}

// startHTTP boots the HTTP transport when addr is non-empty.
func startHTTP(ctx context.Context, srv *mcpsrv.Server, addr string) *http.Server {
	if addr == "" {
		return nil
	}
	httpSrv := srv.HTTP(ctx, addr)
	go func() {
		log.Printf("uns-mcp listening on HTTP %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()
	return httpSrv
}

// startStdio boots the stdio transport if enabled.
func startStdio(ctx context.Context, srv *mcpsrv.Server, enabled bool) <-chan error {
	if !enabled {
		return nil
	}
	ch := make(chan error, 1)
	go func() {
		log.Printf("uns-mcp listening on stdio")
		ch <- srv.Stdio(ctx).ListenAndServe()
	}()
	return ch
}

// waitForShutdown blocks until CTRL-C or stdio transport terminates.
func waitForShutdown(ctx context.Context, stdio <-chan error) error {
	select {
	case <-ctx.Done():
		log.Printf("shutting down…")
		return nil
	case err := <-stdio:
		if err != nil {
			return fmt.Errorf("stdio server terminated: %w", err)
		}
	}
	return nil
}

// gracefulShutdown attempts to close HTTP server within 5s.
func gracefulShutdown(srv *http.Server) error {
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
