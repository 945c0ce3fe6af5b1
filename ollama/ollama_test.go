package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hermannm.dev/datapanel/config"
	"hermannm.dev/datapanel/ollama"
)

func newTestClient(serverURL string) ollama.Client {
	return ollama.NewClient(config.Ollama{
		BaseURL:         serverURL,
		Model:           "test-model",
		Timeout:         5 * time.Second,
		MaxOutputTokens: 100,
	})
}

func TestGenerateSQL(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "/api/chat", req.URL.Path)

			var request map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&request))
			assert.Equal(t, "test-model", request["model"])

			// Ollama may answer with newline-delimited chunks even for stream=false.
			res.Write([]byte(
				`{"message":{"role":"assistant","content":"SELECT city "}}` + "\n" +
					`{"message":{"role":"assistant","content":"FROM customers"},"done":true}` + "\n",
			))
		}),
	)
	defer server.Close()

	generated, err := newTestClient(server.URL).GenerateSQL(
		context.Background(), "list customer cities",
	)
	require.NoError(t, err)
	assert.Equal(t, "SELECT city FROM customers", generated)
}

func TestGenerateSQLServerError(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			http.Error(res, "model not found", http.StatusNotFound)
		}),
	)
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateSQL(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGenerateSQLErrorChunk(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			res.Write([]byte(`{"error":"model is overloaded"}` + "\n"))
		}),
	)
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateSQL(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is overloaded")
}

func TestGenerateSQLEmptyCompletion(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			res.Write([]byte(`{"message":{"role":"assistant","content":""},"done":true}` + "\n"))
		}),
	)
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateSQL(context.Background(), "anything")
	require.Error(t, err)
}

func TestCheckConnection(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			res.WriteHeader(http.StatusOK)
		}),
	)
	assert.True(t, ollama.CheckConnection(server.URL, time.Second))

	server.Close()
	assert.False(t, ollama.CheckConnection(server.URL, time.Second))
}
