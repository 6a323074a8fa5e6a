// internal/service/textgen_client.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPTextGenerator calls an external text-generation service over JSON HTTP
// with a bounded timeout. Any transport or decode failure is returned to the
// caller, which falls back to the deterministic responder.
type HTTPTextGenerator struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPTextGenerator creates a generator for the given endpoint. timeout
// bounds the whole request.
func NewHTTPTextGenerator(baseURL, apiKey string, timeout time.Duration) *HTTPTextGenerator {
	return &HTTPTextGenerator{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Context string `json:"context"`
	Query   string `json:"query"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate sends the financial context and query to the external service and
// returns its text.
func (g *HTTPTextGenerator) Generate(ctx context.Context, financialContext, query string) (string, error) {
	payload, err := json.Marshal(generateRequest{Context: financialContext, Query: query})
	if err != nil {
		return "", fmt.Errorf("failed to encode generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read generation response: %w", err)
	}
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("generation service returned status %d", res.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}
	if out.Text == "" {
		return "", fmt.Errorf("generation service returned empty text")
	}
	return out.Text, nil
}
