package uns

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientSourcesLifecycle(t *testing.T) {
	var gotMethod, gotPath, gotAPIKey string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("unstructured-api-key")
		gotBody, _ = io.ReadAll(r.Body)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		default:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"src-1","name":"docs","type":"s3","config":{"remote_url":"s3://bucket/","recursive":true,"key":"k","secret":"s"}}`))
		}
	}))
	defer server.Close()

	client := NewClient(&Options{BaseURL: server.URL, APIKey: "api-key-1"})
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		config := NewConfig()
		config.Set("remote_url", "s3://bucket/")
		info, err := client.Sources().Create(ctx, &CreateRequest{Name: "docs", Type: "s3", Config: config})
		assert.Nil(t, err)
		assert.EqualValues(t, http.MethodPost, gotMethod)
		assert.EqualValues(t, "/sources/", gotPath)
		assert.EqualValues(t, "api-key-1", gotAPIKey)
		assert.EqualValues(t, "src-1", info.ID)
		assert.EqualValues(t, []string{"remote_url", "recursive", "key", "secret"}, info.Config.Keys())

		var payload map[string]interface{}
		assert.Nil(t, json.Unmarshal(gotBody, &payload))
		assert.EqualValues(t, "s3", payload["type"])
	})

	t.Run("get", func(t *testing.T) {
		info, err := client.Sources().Get(ctx, "src-1")
		assert.Nil(t, err)
		assert.EqualValues(t, http.MethodGet, gotMethod)
		assert.EqualValues(t, "/sources/src-1", gotPath)
		assert.EqualValues(t, "docs", info.Name)
	})

	t.Run("update", func(t *testing.T) {
		config := NewConfig()
		config.Set("recursive", false)
		_, err := client.Sources().Update(ctx, "src-1", config)
		assert.Nil(t, err)
		assert.EqualValues(t, http.MethodPut, gotMethod)
		assert.EqualValues(t, "/sources/src-1", gotPath)
		assert.Contains(t, string(gotBody), `"recursive":false`)
	})

	t.Run("delete", func(t *testing.T) {
		err := client.Sources().Delete(ctx, "src-1")
		assert.Nil(t, err)
		assert.EqualValues(t, http.MethodDelete, gotMethod)
		assert.EqualValues(t, "/sources/src-1", gotPath)
	})
}

func TestClientDestinationsPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"dst-1","name":"vectors","type":"pinecone","config":{}}`))
	}))
	defer server.Close()

	client := NewClient(&Options{BaseURL: server.URL})
	_, err := client.Destinations().Get(context.Background(), "dst-1")
	assert.Nil(t, err)
	assert.EqualValues(t, "/destinations/dst-1", gotPath)
}

func TestClientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"source connector not found"}`))
	}))
	defer server.Close()

	client := NewClient(&Options{BaseURL: server.URL})
	_, err := client.Sources().Get(context.Background(), "missing")
	assert.NotNil(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "source connector not found")

	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.EqualValues(t, http.StatusNotFound, apiErr.StatusCode)
}
