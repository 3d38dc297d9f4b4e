// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

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

	"github.com/solemate/solemate-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotConfigured means no API key is set.
	ErrNotConfigured = errors.New("cloud: api key not configured")

	// ErrAuthFailed means the provider rejected the API key.
	ErrAuthFailed = errors.New("cloud: authentication failed (check your api key)")

	// ErrRateLimited means the provider returned 429.
	ErrRateLimited = errors.New("cloud: rate limited, slow down")

	// ErrEmptyReply means the call succeeded but carried no content.
	ErrEmptyReply = errors.New("cloud: provider returned an empty reply")
)

// APIError carries a non-success HTTP status and the provider's
// diagnostic message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("cloud: api error (status %d)", e.Status)
	}
	return fmt.Sprintf("cloud: api error (status %d): %s", e.Status, e.Message)
}

// =============================================================================
// CLIENT
// =============================================================================

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "claude-3-7-sonnet-20250219"

	// DefaultMaxTokens caps the reply length.
	DefaultMaxTokens = 1500

	// DefaultTemperature is the sampling temperature.
	DefaultTemperature = 0.7

	defaultBaseURL = "https://api.anthropic.com/v1"

	maxRetries     = 3
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 10 * time.Second
)

// sharedHTTPClient is reused across all clients so connections pool.
var sharedHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
// Configure with the With* builder methods; zero values fall back to
// the defaults above.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64

	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client with default settings.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		model:       DefaultModel,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
		httpClient:  sharedHTTPClient,
		limiter:     rate.NewLimiter(rate.Limit(1), 2),
	}
}

// WithBaseURL overrides the API endpoint base (no trailing slash).
func (c *Client) WithBaseURL(baseURL string) *Client {
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

// WithModel overrides the model identifier.
func (c *Client) WithModel(modelName string) *Client {
	if modelName != "" {
		c.model = modelName
	}
	return c
}

// WithMaxTokens overrides the reply length cap.
func (c *Client) WithMaxTokens(n int) *Client {
	if n > 0 {
		c.maxTokens = n
	}
	return c
}

// WithTemperature overrides the sampling temperature.
func (c *Client) WithTemperature(t float64) *Client {
	if t >= 0 {
		c.temperature = t
	}
	return c
}

// WithHTTPClient swaps the underlying HTTP client (used by tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// =============================================================================
// WIRE TYPES
// =============================================================================

type chatRequest struct {
	Model       string       `json:"model"`
	Messages    []model.Turn `json:"messages"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature float64      `json:"temperature"`
	Stream      bool         `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Reply is a completed model call: the raw text plus usage
// accounting. Stats token counts are zero when the provider omits
// usage data; callers must tolerate that.
type Reply struct {
	Content string
	Stats   CallStats
}

// =============================================================================
// CHAT
// =============================================================================

// Chat sends the transcript and returns the reply with cost
// accounting. Transient failures (429, 5xx, network) are retried with
// exponential backoff; auth failures and other client errors are not.
func (c *Client) Chat(ctx context.Context, turns []model.Turn) (Reply, error) {
	if c.apiKey == "" {
		return Reply{}, ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return Reply{}, err
	}

	start := time.Now()
	delay := retryBaseDelay
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Reply{}, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
			if delay > retryMaxDelay {
				delay = retryMaxDelay
			}
		}

		reply, retryable, err := c.doChat(ctx, turns, start)
		if err == nil {
			return reply, nil
		}
		lastErr = err
		if !retryable {
			return Reply{}, err
		}
	}

	return Reply{}, fmt.Errorf("cloud: giving up after %d attempts: %w", maxRetries+1, lastErr)
}

// doChat performs one request. The second return value reports
// whether the failure is worth retrying.
func (c *Client) doChat(ctx context.Context, turns []model.Turn, start time.Time) (Reply, bool, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    turns,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Stream:      false,
	})
	if err != nil {
		return Reply{}, false, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Reply{}, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reply{}, true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return Reply{}, true, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Reply{}, false, ErrAuthFailed
	case resp.StatusCode == http.StatusTooManyRequests:
		return Reply{}, true, ErrRateLimited
	case resp.StatusCode >= 500:
		return Reply{}, true, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	case resp.StatusCode != http.StatusOK:
		return Reply{}, false, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Reply{}, false, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return Reply{}, false, &APIError{Status: resp.StatusCode, Message: parsed.Error.Message}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return Reply{}, false, ErrEmptyReply
	}

	stats := computeStats(c.model, parsed.Usage.PromptTokens, parsed.Usage.CompletionTokens, start)
	return Reply{Content: parsed.Choices[0].Message.Content, Stats: stats}, false, nil
}

// errorMessage pulls the provider's diagnostic out of an error body,
// falling back to the raw body.
func errorMessage(data []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	msg := string(bytes.TrimSpace(data))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
