// Package genai provides a thin REST client for the Google Generative
// Language API. One Client speaks to exactly one model; the assistant service
// composes several of them into its fallback chain.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultTimeout = 30 * time.Second
)

// Config holds the settings for one backend client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client is a handle to one named Gemini model.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Name returns the model identifier this client targets.
func (c *Client) Name() string {
	return c.model
}

// --- Wire types ---

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent submits the prompt and returns the first candidate's text.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("genai %s: marshal request: %w", c.model, err)
	}

	// The key travels as a header, never in the URL: transport errors quote
	// the full URL and end up in logs and client-facing messages.
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("genai %s: build request: %w", c.model, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("genai %s: %w", c.model, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("genai %s: read response: %w", c.model, err)
	}

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if json.Unmarshal(payload, &ae) == nil && ae.Error.Message != "" {
			return "", fmt.Errorf("genai %s: %s (%s)", c.model, ae.Error.Message, ae.Error.Status)
		}
		return "", fmt.Errorf("genai %s: unexpected status %d", c.model, resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(payload, &gr); err != nil {
		return "", fmt.Errorf("genai %s: decode response: %w", c.model, err)
	}
	if len(gr.Candidates) == 0 {
		return "", fmt.Errorf("genai %s: empty response", c.model)
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("genai %s: candidate contained no text", c.model)
	}
	return sb.String(), nil
}
