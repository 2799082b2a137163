package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/arktech/arktech-brain/internal/domain"
	"github.com/arktech/arktech-brain/pkg/config"
)

// Client talks to the Groq OpenAI-compatible chat completion endpoint.
// It is safe for concurrent use.
type Client struct {
	apiKey      string
	url         string
	model       string
	temperature float64
	httpClient  *http.Client
	log         *zap.Logger
}

func NewClient(cfg config.GroqConfig, log *zap.Logger) *Client {
	url := cfg.BaseURL
	if url == "" {
		url = config.DefaultGroqURL
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultGroqModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultGroqTimeout
	}

	return &Client{
		apiKey:      cfg.APIKey,
		url:         url,
		model:       model,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
		log:         log,
	}
}

type chatRequest struct {
	Model       string               `json:"model"`
	Messages    []domain.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string  `json:"role"`
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// ChatCompletion sends messages in order and returns the first choice's content.
// Errors are always one of *StatusError, *TransportError or *DecodeError.
func (c *Client) ChatCompletion(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &DecodeError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(result.Choices) == 0 {
		return "", &DecodeError{Err: ErrNoChoices}
	}
	content := result.Choices[0].Message.Content
	if content == nil {
		return "", &DecodeError{Err: ErrNoContent}
	}

	c.log.Debug("Chat completion received",
		zap.String("model", c.model),
		zap.Int("total_tokens", result.Usage.TotalTokens),
	)

	return *content, nil
}
