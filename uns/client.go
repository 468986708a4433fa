// Package uns implements a client for the Unstructured platform control
// plane, the service of record for connector definitions.
package uns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL points at the hosted control plane API.
const DefaultBaseURL = "https://platform.unstructuredapp.io/api/v1"

const defaultTimeout = 30 * time.Second

// ConnectorAPI exposes the lifecycle operations for one connector role
// (sources or destinations).
type ConnectorAPI interface {
	Create(ctx context.Context, request *CreateRequest) (*ConnectorInfo, error)
	Get(ctx context.Context, id string) (*ConnectorInfo, error)
	Update(ctx context.Context, id string, config *Config) (*ConnectorInfo, error)
	Delete(ctx context.Context, id string) error
}

// Client groups the per-role APIs of the control plane.
type Client interface {
	Sources() ConnectorAPI
	Destinations() ConnectorAPI
}

// Options configures the HTTP client.
type Options struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type client struct {
	sources      *roleClient
	destinations *roleClient
}

// roleClient issues requests against a single connector collection.
type roleClient struct {
	baseURL    string
	collection string
	apiKey     string
	httpClient *http.Client
	newID      func() string
}

// NewClient builds a control-plane client. Missing options fall back to the
// hosted endpoint and a 30s request timeout.
func NewClient(options *Options) Client {
	if options == nil {
		options = &Options{}
	}
	baseURL := strings.TrimRight(options.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	newRole := func(collection string) *roleClient {
		return &roleClient{
			baseURL:    baseURL,
			collection: collection,
			apiKey:     options.APIKey,
			httpClient: httpClient,
			newID:      uuid.NewString,
		}
	}
	return &client{
		sources:      newRole("sources"),
		destinations: newRole("destinations"),
	}
}

func (c *client) Sources() ConnectorAPI {
	return c.sources
}

func (c *client) Destinations() ConnectorAPI {
	return c.destinations
}

func (r *roleClient) Create(ctx context.Context, request *CreateRequest) (*ConnectorInfo, error) {
	info := &ConnectorInfo{}
	url := fmt.Sprintf("%s/%s/", r.baseURL, r.collection)
	if err := r.do(ctx, http.MethodPost, url, request, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (r *roleClient) Get(ctx context.Context, id string) (*ConnectorInfo, error) {
	info := &ConnectorInfo{}
	if err := r.do(ctx, http.MethodGet, r.itemURL(id), nil, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (r *roleClient) Update(ctx context.Context, id string, config *Config) (*ConnectorInfo, error) {
	info := &ConnectorInfo{}
	if err := r.do(ctx, http.MethodPut, r.itemURL(id), &UpdateRequest{Config: config}, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (r *roleClient) Delete(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, r.itemURL(id), nil, nil)
}

func (r *roleClient) itemURL(id string) string {
	return fmt.Sprintf("%s/%s/%s", r.baseURL, r.collection, id)
}

func (r *roleClient) do(ctx context.Context, method, url string, payload, result interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-ID", r.newID())
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if r.apiKey != "" {
		request.Header.Set("unstructured-api-key", r.apiKey)
	}
	response, err := r.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &APIError{StatusCode: response.StatusCode, Detail: errorDetail(data)}
	}
	if result == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, result)
}

// errorDetail extracts the "detail" field of an error payload, falling back
// to the raw body.
func errorDetail(data []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(data))
}
