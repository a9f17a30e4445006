// internal/genai/client.go
// Package genai calls an external text-generation service for resume copy.
// The service is an optional collaborator: every caller must be able to
// proceed on a deterministic fallback when it is slow, down, or returns
// nothing usable.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"skillmatch/internal/common/config"
	"skillmatch/internal/common/errors"
	"skillmatch/internal/common/logger"
)

// Generator produces text for a prompt. Implementations must honor the
// context deadline.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is one generation call.
type Request struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// Client is the HTTP generator. One attempt per call; the budget belongs to
// the user-facing request, so a failed attempt falls back instead of
// retrying.
type Client struct {
	baseURL     string
	apiKey      string
	timeout     time.Duration
	maxTokens   int
	temperature float64
	client      *http.Client
	logger      logger.Logger
}

func NewClient(cfg config.APIsConfig, log logger.Logger) *Client {
	timeout := time.Duration(cfg.GenAI.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.GenAI.BaseURL, "/"),
		apiKey:      cfg.GenAI.APIKey,
		timeout:     timeout,
		maxTokens:   cfg.GenAI.MaxTokens,
		temperature: cfg.GenAI.Temperature,
		// No client-level timeout; the per-call context carries the deadline.
		client: &http.Client{},
		logger: log.WithFields(map[string]interface{}{"component": "genai-client"}),
	}
}

func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if req.MaxTokens == 0 {
		req.MaxTokens = c.maxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = c.temperature
	}

	body, _ := json.Marshal(req)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ai/generate", bytes.NewBuffer(body))
	if err != nil {
		return "", errors.NewGenerationFailedError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errors.NewGenerationTimeoutError()
		}
		return "", errors.NewGenerationFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewGenerationFailedError(fmt.Errorf("status %d", resp.StatusCode))
	}

	var apiResponse struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", errors.NewGenerationFailedError(fmt.Errorf("decode error: %w", err))
	}

	text := strings.TrimSpace(apiResponse.Text)
	if text == "" {
		return "", errors.NewGenerationFailedError(fmt.Errorf("empty response text"))
	}

	c.logger.Debug("generation completed", map[string]interface{}{
		"chars": len(text),
	})
	return text, nil
}
