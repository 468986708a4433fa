package connector

import (
	"github.com/MKhalusova/uns-mcp/uns"
)

// CreateInput is implemented by the per-type create tool payloads. Fields
// returns the caller-supplied configuration in declaration order; credential
// fields are deliberately absent from every payload.
type CreateInput interface {
	ConnectorName() string
	Fields() []uns.Field
}

// UpdateInput is implemented by the per-type update tool payloads.
// Overrides returns only the fields the caller explicitly set; an omitted
// field is not an override.
type UpdateInput interface {
	ConnectorID() string
	Overrides() []uns.Field
}

// DeleteInput is implemented by the per-type delete tool payloads.
type DeleteInput interface {
	ConnectorID() string
}

// Output conveys a lifecycle tool result.
type Output struct {
	Status string `json:"status"`
	Report string `json:"report,omitempty"`
	Error  string `json:"error,omitempty"`
}

// S3 source

type CreateS3SourceInput struct {
	Name      string `json:"name" description:"A unique name for this connector"`
	RemoteURL string `json:"remote_url" description:"The S3 URI to the bucket or folder, e.g. s3://my-bucket/"`
	Recursive bool   `json:"recursive,omitempty" description:"Whether to access subfolders within the bucket"`
}

func (i *CreateS3SourceInput) ConnectorName() string { return i.Name }
func (i *CreateS3SourceInput) Fields() []uns.Field {
	return []uns.Field{
		{Key: "remote_url", Value: i.RemoteURL},
		{Key: "recursive", Value: i.Recursive},
	}
}

type UpdateS3SourceInput struct {
	SourceID  string  `json:"source_id" description:"ID of the source connector to update"`
	RemoteURL *string `json:"remote_url,omitempty" description:"The S3 URI to the bucket or folder"`
	Recursive *bool   `json:"recursive,omitempty" description:"Whether to access subfolders within the bucket"`
}

func (i *UpdateS3SourceInput) ConnectorID() string { return i.SourceID }
func (i *UpdateS3SourceInput) Overrides() []uns.Field {
	var fields []uns.Field
	if i.RemoteURL != nil {
		fields = append(fields, uns.Field{Key: "remote_url", Value: *i.RemoteURL})
	}
	if i.Recursive != nil {
		fields = append(fields, uns.Field{Key: "recursive", Value: *i.Recursive})
	}
	return fields
}

type DeleteS3SourceInput struct {
	SourceID string `json:"source_id" description:"ID of the source connector to delete"`
}

func (i *DeleteS3SourceInput) ConnectorID() string { return i.SourceID }

// Azure source

type CreateAzureSourceInput struct {
	Name      string `json:"name" description:"A unique name for this connector"`
	RemoteURL string `json:"remote_url" description:"The Azure Storage remote URL, e.g. az://<container>/<path>"`
	Recursive bool   `json:"recursive,omitempty" description:"Whether to access subfolders within the container"`
}

func (i *CreateAzureSourceInput) ConnectorName() string { return i.Name }
func (i *CreateAzureSourceInput) Fields() []uns.Field {
	return []uns.Field{
		{Key: "remote_url", Value: i.RemoteURL},
		{Key: "recursive", Value: i.Recursive},
	}
}

type UpdateAzureSourceInput struct {
	SourceID  string  `json:"source_id" description:"ID of the source connector to update"`
	RemoteURL *string `json:"remote_url,omitempty" description:"The Azure Storage remote URL"`
	Recursive *bool   `json:"recursive,omitempty" description:"Whether to access subfolders within the container"`
}

func (i *UpdateAzureSourceInput) ConnectorID() string { return i.SourceID }
func (i *UpdateAzureSourceInput) Overrides() []uns.Field {
	var fields []uns.Field
	if i.RemoteURL != nil {
		fields = append(fields, uns.Field{Key: "remote_url", Value: *i.RemoteURL})
	}
	if i.Recursive != nil {
		fields = append(fields, uns.Field{Key: "recursive", Value: *i.Recursive})
	}
	return fields
}

type DeleteAzureSourceInput struct {
	SourceID string `json:"source_id" description:"ID of the source connector to delete"`
}

func (i *DeleteAzureSourceInput) ConnectorID() string { return i.SourceID }

// S3 destination

type CreateS3DestinationInput struct {
	Name        string `json:"name" description:"A unique name for this connector"`
	RemoteURL   string `json:"remote_url" description:"The S3 URI to the bucket or folder, e.g. s3://my-bucket/"`
	EndpointURL string `json:"endpoint_url,omitempty" description:"Custom URL if connecting to a non-AWS S3 bucket"`
}

func (i *CreateS3DestinationInput) ConnectorName() string { return i.Name }
func (i *CreateS3DestinationInput) Fields() []uns.Field {
	return []uns.Field{
		{Key: "remote_url", Value: i.RemoteURL},
		{Key: "endpoint_url", Value: i.EndpointURL},
	}
}

type UpdateS3DestinationInput struct {
	DestinationID string  `json:"destination_id" description:"ID of the destination connector to update"`
	RemoteURL     *string `json:"remote_url,omitempty" description:"The S3 URI to the bucket or folder"`
	EndpointURL   *string `json:"endpoint_url,omitempty" description:"Custom URL if connecting to a non-AWS S3 bucket"`
}

func (i *UpdateS3DestinationInput) ConnectorID() string { return i.DestinationID }
func (i *UpdateS3DestinationInput) Overrides() []uns.Field {
	var fields []uns.Field
	if i.RemoteURL != nil {
		fields = append(fields, uns.Field{Key: "remote_url", Value: *i.RemoteURL})
	}
	if i.EndpointURL != nil {
		fields = append(fields, uns.Field{Key: "endpoint_url", Value: *i.EndpointURL})
	}
	return fields
}

type DeleteS3DestinationInput struct {
	DestinationID string `json:"destination_id" description:"ID of the destination connector to delete"`
}

func (i *DeleteS3DestinationInput) ConnectorID() string { return i.DestinationID }

// Pinecone destination

type CreatePineconeDestinationInput struct {
	Name      string `json:"name" description:"A unique name for this connector"`
	IndexName string `json:"index_name" description:"Name of the Pinecone index"`
	Namespace string `json:"namespace,omitempty" description:"Namespace of the Pinecone index, defaults to \"default\""`
	BatchSize int    `json:"batch_size,omitempty" description:"Batch size for indexing, defaults to 50"`
}

func (i *CreatePineconeDestinationInput) ConnectorName() string { return i.Name }
func (i *CreatePineconeDestinationInput) Fields() []uns.Field {
	namespace := i.Namespace
	if namespace == "" {
		namespace = "default"
	}
	batchSize := i.BatchSize
	if batchSize == 0 {
		batchSize = 50
	}
	return []uns.Field{
		{Key: "index_name", Value: i.IndexName},
		{Key: "namespace", Value: namespace},
		{Key: "batch_size", Value: batchSize},
	}
}

type UpdatePineconeDestinationInput struct {
	DestinationID string  `json:"destination_id" description:"ID of the destination connector to update"`
	IndexName     *string `json:"index_name,omitempty" description:"Name of the Pinecone index"`
	Namespace     *string `json:"namespace,omitempty" description:"Namespace of the Pinecone index"`
	BatchSize     *int    `json:"batch_size,omitempty" description:"Batch size for indexing"`
}

func (i *UpdatePineconeDestinationInput) ConnectorID() string { return i.DestinationID }
func (i *UpdatePineconeDestinationInput) Overrides() []uns.Field {
	var fields []uns.Field
	if i.IndexName != nil {
		fields = append(fields, uns.Field{Key: "index_name", Value: *i.IndexName})
	}
	if i.Namespace != nil {
		fields = append(fields, uns.Field{Key: "namespace", Value: *i.Namespace})
	}
	if i.BatchSize != nil {
		fields = append(fields, uns.Field{Key: "batch_size", Value: *i.BatchSize})
	}
	return fields
}

type DeletePineconeDestinationInput struct {
	DestinationID string `json:"destination_id" description:"ID of the destination connector to delete"`
}

func (i *DeletePineconeDestinationInput) ConnectorID() string { return i.DestinationID }

// Weaviate destination

type CreateWeaviateDestinationInput struct {
	Name       string `json:"name" description:"A unique name for this connector"`
	ClusterURL string `json:"cluster_url" description:"URL of the Weaviate cluster"`
	Collection string `json:"collection,omitempty" description:"Name of the collection to use in the Weaviate cluster"`
}

func (i *CreateWeaviateDestinationInput) ConnectorName() string { return i.Name }
func (i *CreateWeaviateDestinationInput) Fields() []uns.Field {
	return []uns.Field{
		{Key: "cluster_url", Value: i.ClusterURL},
		{Key: "collection", Value: i.Collection},
	}
}

type UpdateWeaviateDestinationInput struct {
	DestinationID string  `json:"destination_id" description:"ID of the destination connector to update"`
	ClusterURL    *string `json:"cluster_url,omitempty" description:"URL of the Weaviate cluster"`
	Collection    *string `json:"collection,omitempty" description:"Name of the collection to use in the Weaviate cluster"`
}

func (i *UpdateWeaviateDestinationInput) ConnectorID() string { return i.DestinationID }
func (i *UpdateWeaviateDestinationInput) Overrides() []uns.Field {
	var fields []uns.Field
	if i.ClusterURL != nil {
		fields = append(fields, uns.Field{Key: "cluster_url", Value: *i.ClusterURL})
	}
	if i.Collection != nil {
		fields = append(fields, uns.Field{Key: "collection", Value: *i.Collection})
	}
	return fields
}

type DeleteWeaviateDestinationInput struct {
	DestinationID string `json:"destination_id" description:"ID of the destination connector to delete"`
}

func (i *DeleteWeaviateDestinationInput) ConnectorID() string { return i.DestinationID }
