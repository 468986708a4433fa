package mcp

import (
	"context"

	"github.com/MKhalusova/uns-mcp/connector"
	"github.com/MKhalusova/uns-mcp/connector/meta"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"
)

// toolHandler is the signature RegisterTool expects for a typed input.
type toolHandler[T any] func(ctx context.Context, input T) (*schema.CallToolResult, *jsonrpc.Error)

// handleCreate adapts the lifecycle Create call to a tool handler. Failures
// become IsError results carrying the diagnostic text, never protocol
// errors.
func handleCreate[T connector.CreateInput](svc *connector.Service, metaCfg *meta.Config) toolHandler[T] {
	return func(ctx context.Context, input T) (*schema.CallToolResult, *jsonrpc.Error) {
		report, err := svc.Create(ctx, metaCfg, input)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildReportResult(report)
	}
}

func handleUpdate[T connector.UpdateInput](svc *connector.Service, metaCfg *meta.Config) toolHandler[T] {
	return func(ctx context.Context, input T) (*schema.CallToolResult, *jsonrpc.Error) {
		report, err := svc.Update(ctx, metaCfg, input)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildReportResult(report)
	}
}

func handleDelete[T connector.DeleteInput](svc *connector.Service, metaCfg *meta.Config) toolHandler[T] {
	return func(ctx context.Context, input T) (*schema.CallToolResult, *jsonrpc.Error) {
		confirmation, err := svc.Delete(ctx, metaCfg, input.ConnectorID())
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildReportResult(confirmation)
	}
}

func registerTools(base *protoserver.DefaultHandler, ret *Handler) error {
	s3Source := meta.Lookup("s3", meta.RoleSource)
	azureSource := meta.Lookup("azure", meta.RoleSource)
	s3Destination := meta.Lookup("s3", meta.RoleDestination)
	pineconeDestination := meta.Lookup("pinecone", meta.RoleDestination)
	weaviateDestination := meta.Lookup("weaviate", meta.RoleDestination)
	svc := ret.connectors

	// S3 source
	if err := protoserver.RegisterTool[*connector.CreateS3SourceInput, *connector.Output](base.Registry, "createS3Source",
		"Create an S3 source connector. AWS credentials are sourced from the server environment, never from the caller.",
		handleCreate[*connector.CreateS3SourceInput](svc, s3Source)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.UpdateS3SourceInput, *connector.Output](base.Registry, "updateS3Source",
		"Update an S3 source connector. Only the supplied fields change; everything else keeps its current value.",
		handleUpdate[*connector.UpdateS3SourceInput](svc, s3Source)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.DeleteS3SourceInput, *connector.Output](base.Registry, "deleteS3Source",
		"Delete an S3 source connector by ID.",
		handleDelete[*connector.DeleteS3SourceInput](svc, s3Source)); err != nil {
		return err
	}

	// Azure source
	if err := protoserver.RegisterTool[*connector.CreateAzureSourceInput, *connector.Output](base.Registry, "createAzureSource",
		"Create an Azure Storage source connector. Azure credentials are sourced from the server environment, never from the caller.",
		handleCreate[*connector.CreateAzureSourceInput](svc, azureSource)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.UpdateAzureSourceInput, *connector.Output](base.Registry, "updateAzureSource",
		"Update an Azure Storage source connector. Only the supplied fields change; everything else keeps its current value.",
		handleUpdate[*connector.UpdateAzureSourceInput](svc, azureSource)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.DeleteAzureSourceInput, *connector.Output](base.Registry, "deleteAzureSource",
		"Delete an Azure Storage source connector by ID.",
		handleDelete[*connector.DeleteAzureSourceInput](svc, azureSource)); err != nil {
		return err
	}

	// S3 destination
	if err := protoserver.RegisterTool[*connector.CreateS3DestinationInput, *connector.Output](base.Registry, "createS3Destination",
		"Create an S3 destination connector. AWS credentials are sourced from the server environment, never from the caller.",
		handleCreate[*connector.CreateS3DestinationInput](svc, s3Destination)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.UpdateS3DestinationInput, *connector.Output](base.Registry, "updateS3Destination",
		"Update an S3 destination connector. Only the supplied fields change; everything else keeps its current value.",
		handleUpdate[*connector.UpdateS3DestinationInput](svc, s3Destination)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.DeleteS3DestinationInput, *connector.Output](base.Registry, "deleteS3Destination",
		"Delete an S3 destination connector by ID.",
		handleDelete[*connector.DeleteS3DestinationInput](svc, s3Destination)); err != nil {
		return err
	}

	// Pinecone destination
	if err := protoserver.RegisterTool[*connector.CreatePineconeDestinationInput, *connector.Output](base.Registry, "createPineconeDestination",
		"Create a Pinecone vector database destination connector. The Pinecone API key is sourced from the server environment, never from the caller.",
		handleCreate[*connector.CreatePineconeDestinationInput](svc, pineconeDestination)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.UpdatePineconeDestinationInput, *connector.Output](base.Registry, "updatePineconeDestination",
		"Update a Pinecone destination connector. Only the supplied fields change; everything else keeps its current value.",
		handleUpdate[*connector.UpdatePineconeDestinationInput](svc, pineconeDestination)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.DeletePineconeDestinationInput, *connector.Output](base.Registry, "deletePineconeDestination",
		"Delete a Pinecone destination connector by ID.",
		handleDelete[*connector.DeletePineconeDestinationInput](svc, pineconeDestination)); err != nil {
		return err
	}

	// Weaviate destination
	if err := protoserver.RegisterTool[*connector.CreateWeaviateDestinationInput, *connector.Output](base.Registry, "createWeaviateDestination",
		"Create a Weaviate vector database destination connector. The Weaviate API key is sourced from the server environment, never from the caller.",
		handleCreate[*connector.CreateWeaviateDestinationInput](svc, weaviateDestination)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.UpdateWeaviateDestinationInput, *connector.Output](base.Registry, "updateWeaviateDestination",
		"Update a Weaviate destination connector. Only the supplied fields change; everything else keeps its current value.",
		handleUpdate[*connector.UpdateWeaviateDestinationInput](svc, weaviateDestination)); err != nil {
		return err
	}
	if err := protoserver.RegisterTool[*connector.DeleteWeaviateDestinationInput, *connector.Output](base.Registry, "deleteWeaviateDestination",
		"Delete a Weaviate destination connector by ID.",
		handleDelete[*connector.DeleteWeaviateDestinationInput](svc, weaviateDestination)); err != nil {
		return err
	}
	return nil
}
