package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTemperature = 0.2
	defaultMaxTokens   = 2000
)

// PromptSpec is a single system+user prompt pair. Zero values for
// Temperature, MaxTokens and Model fall back to the client defaults.
type PromptSpec struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
	Model       string
}

// Client sends a prompt pair to the chat-completion endpoint and returns the
// raw text of the first choice.
type Client interface {
	Complete(ctx context.Context, apiKey string, spec PromptSpec) (string, error)
}

// HTTPClient is the production Client. One POST per call, a hard timeout,
// no retries.
type HTTPClient struct {
	apiURL     string
	model      string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

func NewHTTPClient(apiURL, model string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		apiURL:  apiURL,
		model:   model,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete issues the request and classifies failures. The credential must
// already be resolved by the caller; an empty key fails before any network I/O.
func (c *HTTPClient) Complete(ctx context.Context, apiKey string, spec PromptSpec) (string, error) {
	if apiKey == "" {
		return "", ErrCredentialMissing
	}

	if spec.Temperature == 0 {
		spec.Temperature = defaultTemperature
	}
	if spec.MaxTokens == 0 {
		spec.MaxTokens = defaultMaxTokens
	}
	if spec.Model == "" {
		spec.Model = c.model
	}

	reqBody := chatRequest{
		Model: spec.Model,
		Messages: []chatMessage{
			{Role: "system", Content: spec.System},
			{Role: "user", Content: spec.User},
		},
		Temperature: spec.Temperature,
		MaxTokens:   spec.MaxTokens,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.logger.Warn("completion request timed out", zap.Duration("timeout", c.timeout))
			return "", ErrTimeout
		}
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.logger.Warn("completion credential rejected by endpoint")
		return "", ErrCredentialInvalid
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.Warn("completion endpoint rate limited")
		return "", ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		var errResp chatErrorResponse
		_ = json.Unmarshal(body, &errResp)
		c.logger.Warn("completion request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("message", errResp.Error.Message))
		return "", &RequestError{Status: resp.StatusCode, Message: errResp.Error.Message}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		c.logger.Warn("completion response contained no choices")
		return "", ErrEmptyCompletion
	}

	return chatResp.Choices[0].Message.Content, nil
}
