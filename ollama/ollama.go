// Package ollama provides a minimal client for a locally running Ollama server: a
// single-shot chat completion used for SQL generation, and a liveness probe used to
// gate application startup.
package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hermannm.dev/datapanel/config"
	"hermannm.dev/wrap"
)

type Client struct {
	baseURL         string
	model           string
	maxOutputTokens int
	httpClient      *http.Client
}

func NewClient(config config.Ollama) Client {
	return Client{
		baseURL:         strings.TrimSuffix(config.BaseURL, "/"),
		model:           config.Model,
		maxOutputTokens: config.MaxOutputTokens,
		httpClient:      &http.Client{Timeout: config.Timeout},
	}
}

// GenerateSQL submits the given prompt for a deterministic (temperature 0), bounded
// completion and returns the generated text. Implements interpret.SQLGenerator.
func (client Client) GenerateSQL(ctx context.Context, prompt string) (string, error) {
	request := chatRequest{
		Model:    client.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
		Options: map[string]any{
			"temperature": 0,
			"num_predict": client.maxOutputTokens,
		},
	}

	response, err := client.chat(ctx, request)
	if err != nil {
		return "", wrap.Error(err, "chat request to Ollama failed")
	}

	content := strings.TrimSpace(response.Message.Content)
	if content == "" {
		return "", errors.New("Ollama returned an empty completion")
	}

	return content, nil
}

func (client Client) chat(ctx context.Context, request chatRequest) (chatResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return chatResponse{}, wrap.Error(err, "failed to serialize chat request")
	}

	httpRequest, err := http.NewRequestWithContext(
		ctx, http.MethodPost, client.baseURL+"/api/chat", bytes.NewReader(body),
	)
	if err != nil {
		return chatResponse{}, wrap.Error(err, "failed to create chat request")
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := client.httpClient.Do(httpRequest)
	if err != nil {
		return chatResponse{}, err
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		errorBody, _ := io.ReadAll(io.LimitReader(httpResponse.Body, 1024))
		return chatResponse{}, fmt.Errorf(
			"Ollama responded with HTTP %d: %s", httpResponse.StatusCode, string(errorBody),
		)
	}

	// Even with stream=false, Ollama may answer with newline-delimited JSON chunks, so
	// the response is decoded line by line, accumulating content.
	var response chatResponse
	scanner := bufio.NewScanner(httpResponse.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var chunk chatResponse
		if err := json.Unmarshal(line, &chunk); err != nil {
			return chatResponse{}, wrap.Error(err, "failed to decode chat response")
		}
		if chunk.Error != "" {
			return chatResponse{}, fmt.Errorf("Ollama error: %s", chunk.Error)
		}

		response.Message.Content += chunk.Message.Content
		if chunk.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return chatResponse{}, wrap.Error(err, "failed to read chat response")
	}

	return response, nil
}

// CheckConnection probes the Ollama server with a plain GET to its base URL, reporting
// whether it answered with HTTP 200.
func CheckConnection(baseURL string, timeout time.Duration) bool {
	httpClient := http.Client{Timeout: timeout}

	response, err := httpClient.Get(baseURL)
	if err != nil {
		return false
	}
	defer response.Body.Close()

	return response.StatusCode == http.StatusOK
}

type chatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done,omitempty"`
	Error   string      `json:"error,omitempty"`
}
