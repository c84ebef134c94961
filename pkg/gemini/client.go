// Package gemini is a chat client for the Gemini Generative Language
// API, used as the assistant's cloud capability.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrEmptyResponse indicates the API answered without any candidate text.
var ErrEmptyResponse = errors.New("gemini: empty response")

// Config configures the client. Zero values fall back to defaults.
type Config struct {
	APIKey      string
	Model       string
	APIURL      string
	Timeout     time.Duration
	RatePerSec  float64
	Temperature float64
	MaxTokens   int
}

// Client is the Gemini API chat client.
type Client struct {
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a new Gemini chat client.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = defaultRateLimit
	}

	httpClient := &http.Client{}
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		apiKey:      cfg.APIKey,
		apiURL:      cfg.APIURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
	}
}

// SetAPIURL overrides the API base URL. Intended for tests.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// Chat sends one user query with optional care context and returns the
// model's text reply. Fails on rate-limit wait, transport, API, or
// empty-response errors.
func (c *Client) Chat(ctx context.Context, query string, contextText string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("gemini: rate limit wait: %w", err)
	}

	system := systemPrompt
	if contextText != "" {
		system = system + "\n\nCare context: " + contextText
	}

	req := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: system}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: query}}},
		},
	}
	if c.temperature > 0 || c.maxTokens > 0 {
		req.GenerationConfig = &generationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxTokens,
		}
	}

	resp, err := c.callAPI(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (c *Client) callAPI(ctx context.Context, req generateRequest) (*generateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}
