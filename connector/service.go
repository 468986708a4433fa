// Package connector implements the lifecycle of connector definitions
// registered against the document-ingestion control plane: building a
// configuration from caller fields plus provider-sourced credentials,
// merging sparse updates onto the current remote state, and rendering
// display-safe reports.
package connector

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhalusova/uns-mcp/connector/meta"
	"github.com/MKhalusova/uns-mcp/credentials"
	"github.com/MKhalusova/uns-mcp/uns"
	"github.com/viant/mcp-protocol/client"
)

// Service orchestrates create/update/delete calls against the control
// plane. It holds no mutable state of its own; the control plane is the
// source of truth and concurrent operations need no local coordination.
type Service struct {
	client    uns.Client
	creds     credentials.Provider
	mcpClient client.Operations
}

// NewService builds a lifecycle Service.
func NewService(controlPlane uns.Client, creds credentials.Provider, operations client.Operations) *Service {
	return &Service{client: controlPlane, creds: creds, mcpClient: operations}
}

func (s *Service) api(role meta.Role) uns.ConnectorAPI {
	if role == meta.RoleDestination {
		return s.client.Destinations()
	}
	return s.client.Sources()
}

// Create registers a new connector and returns the rendered report. When a
// required field is missing and the client supports elicitation, the
// missing details are collected interactively before giving up.
func (s *Service) Create(ctx context.Context, metaCfg *meta.Config, input CreateInput) (string, error) {
	config, err := BuildConfig(ctx, metaCfg, input.Fields(), s.creds)
	if err != nil {
		var opErr *OpError
		if !errors.As(err, &opErr) || opErr.Kind != KindStructural {
			return "", err
		}
		if elicitErr := s.elicitCreateInput(ctx, metaCfg, input); elicitErr != nil {
			return "", err
		}
		if config, err = BuildConfig(ctx, metaCfg, input.Fields(), s.creds); err != nil {
			return "", err
		}
	}
	request := &uns.CreateRequest{Name: input.ConnectorName(), Type: metaCfg.Type, Config: config}
	info, err := s.api(metaCfg.Role).Create(ctx, request)
	if err != nil {
		return "", &OpError{Kind: KindSubmit, Op: "creating", Subject: metaCfg.Subject(), Err: err}
	}
	return RenderReport(metaCfg, "created", info), nil
}

// Update fetches the connector's current configuration, applies the
// caller's overrides and submits the merged result. When the fetch fails
// the operation stops immediately: merging onto a partial or empty base
// could silently clear fields the caller never mentioned.
func (s *Service) Update(ctx context.Context, metaCfg *meta.Config, input UpdateInput) (string, error) {
	api := s.api(metaCfg.Role)
	current, err := api.Get(ctx, input.ConnectorID())
	if err != nil {
		return "", &OpError{Kind: KindFetch, Op: "retrieving", Subject: string(metaCfg.Role), Err: err}
	}
	// A fetch that yields no configuration is as unusable as a failed one:
	// merging onto an empty base would clear fields the caller never
	// mentioned.
	if current.Config == nil {
		return "", &OpError{
			Kind:    KindFetch,
			Op:      "retrieving",
			Subject: string(metaCfg.Role),
			Err:     fmt.Errorf("connector %s has no configuration", input.ConnectorID()),
		}
	}
	merged := MergeConfig(current.Config, input.Overrides())
	info, err := api.Update(ctx, input.ConnectorID(), merged)
	if err != nil {
		return "", &OpError{Kind: KindSubmit, Op: "updating", Subject: metaCfg.Subject(), Err: err}
	}
	return RenderReport(metaCfg, "updated", info), nil
}

// Delete removes the connector and returns a confirmation naming its id.
func (s *Service) Delete(ctx context.Context, metaCfg *meta.Config, id string) (string, error) {
	if err := s.api(metaCfg.Role).Delete(ctx, id); err != nil {
		return "", &OpError{Kind: KindSubmit, Op: "deleting", Subject: metaCfg.Subject(), Err: err}
	}
	return fmt.Sprintf("%s Connector with ID %s deleted successfully", metaCfg.Title(), id), nil
}
