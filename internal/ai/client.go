// Package ai provides the completion gateway interface and implementations.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/config"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
	"github.com/Alex-Leontaridis/GovAid-AI/pkg/textutil"
	"go.uber.org/zap"
)

// OpenAIClient implements Gateway against an OpenAI-compatible
// chat-completions API (OpenRouter in production).
type OpenAIClient struct {
	config     *config.AIConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// OpenAI API request/response structures
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenAIClient creates a new OpenAI-compatible completion client.
func NewOpenAIClient(cfg *config.AIConfig, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("ai_client"),
	}
}

// Complete performs one completion call with retry on transient failures.
// Retries happen only here: 429, 5xx and transport errors back off
// exponentially up to the configured attempt count; everything else is
// permanent and surfaces immediately.
func (c *OpenAIClient) Complete(ctx context.Context, creq CompletionRequest) (string, error) {
	startTime := time.Now()

	maxTokens := creq.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.config.MaxTokens
	}

	temperature := creq.Temperature
	if temperature == 0 {
		temperature = c.config.Temperature
	}

	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: creq.System},
			{Role: "user", Content: creq.User},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", domain.E(domain.KindUpstream, "marshal_request", err)
	}

	c.logger.Debug("starting completion call",
		zap.Int("system_len", len(creq.System)),
		zap.Int("user_len", len(creq.User)),
		zap.Int("max_tokens", maxTokens),
		zap.Float64("temperature", temperature),
	)

	var content string
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff
			backoff := time.Duration(attempt*attempt) * time.Second
			c.logger.Debug("retrying completion call",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return "", domain.E(domain.KindUpstream, "context_cancelled", ctx.Err())
			case <-time.After(backoff):
			}
		}

		content, lastErr = c.executeRequest(ctx, jsonBody)
		if lastErr == nil {
			break
		}

		if !domain.IsRetryable(lastErr) {
			break
		}
	}

	if lastErr != nil {
		return "", lastErr
	}

	c.logger.Debug("completion call finished",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("response_len", len(content)),
	)

	return content, nil
}

// executeRequest performs a single HTTP request to the completion API.
// The request body is rebuilt per attempt so retries never reuse a
// consumed reader.
func (c *OpenAIClient) executeRequest(ctx context.Context, jsonBody []byte) (string, error) {
	url := fmt.Sprintf("%s/chat/completions", strings.TrimSuffix(c.config.BaseURL, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", domain.E(domain.KindUpstream, "create_request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))
	// OpenRouter attribution headers
	req.Header.Set("HTTP-Referer", "https://govaid-ai.com/")
	req.Header.Set("X-Title", "GovAid-AI")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", domain.Retryable(domain.KindUpstream, "ai_timeout", domain.ErrUpstreamTimeout)
		}
		return "", domain.Retryable(domain.KindUpstream, "http_request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.Retryable(domain.KindUpstream, "read_response", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			return "", domain.Retryable(domain.KindUpstream, "rate_limit", domain.ErrRateLimited)
		}
		if resp.StatusCode >= 500 {
			return "", domain.Retryable(domain.KindUpstream, "ai_unavailable", domain.ErrUpstreamUnavailable)
		}
		return "", domain.E(domain.KindUpstream, "ai_error",
			fmt.Errorf("AI API returned status %d: %s", resp.StatusCode, textutil.Truncate(string(body), 200)))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", domain.E(domain.KindUpstream, "parse_response", err)
	}

	if chatResp.Error != nil {
		return "", domain.E(domain.KindUpstream, "ai_api_error",
			fmt.Errorf("%s: %s", chatResp.Error.Type, chatResp.Error.Message))
	}

	if len(chatResp.Choices) == 0 {
		return "", domain.E(domain.KindUpstream, "empty_response",
			fmt.Errorf("completion returned no choices"))
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
