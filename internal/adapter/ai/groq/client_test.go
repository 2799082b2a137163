package groq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/arktech/arktech-brain/internal/domain"
	"github.com/arktech/arktech-brain/pkg/config"
)

func newTestClient(url string, timeout time.Duration) *Client {
	return NewClient(config.GroqConfig{
		APIKey:      "test-key",
		BaseURL:     url,
		Model:       config.DefaultGroqModel,
		Temperature: config.DefaultTemperature,
		Timeout:     timeout,
	}, zap.NewNop())
}

var testMessages = []domain.ChatMessage{
	{Role: domain.RoleSystem, Content: config.DefaultSystemPrompt},
	{Role: domain.RoleUser, Content: "What is the capital of France?"},
}

func TestClient_ChatCompletion_Success(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected Content-Type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Paris is the capital of France."}}],"usage":{"total_tokens":42}}`)
	}))
	defer server.Close()

	answer, err := newTestClient(server.URL, time.Second).ChatCompletion(context.Background(), testMessages)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if answer != "Paris is the capital of France." {
		t.Errorf("unexpected answer %q", answer)
	}

	if got.Model != "llama-3.1-8b-instant" {
		t.Errorf("unexpected model %q", got.Model)
	}
	if got.Temperature != 0.4 {
		t.Errorf("unexpected temperature %v", got.Temperature)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Errorf("unexpected messages %+v", got.Messages)
	}
	if got.Messages[1].Content != "What is the capital of France?" {
		t.Errorf("unexpected user content %q", got.Messages[1].Content)
	}
}

func TestClient_ChatCompletion_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, "rate limited")
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, time.Second).ChatCompletion(context.Background(), testMessages)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T (%v)", err, err)
	}
	if statusErr.Code != 429 {
		t.Errorf("expected status 429, got %d", statusErr.Code)
	}
	if statusErr.Body != "rate limited" {
		t.Errorf("expected body verbatim, got %q", statusErr.Body)
	}
}

func TestClient_ChatCompletion_NonOKSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"choices":[{"message":{"content":"hi"}}]}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, time.Second).ChatCompletion(context.Background(), testMessages)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusCreated {
		t.Fatalf("expected StatusError 201, got %v", err)
	}
}

func TestClient_ChatCompletion_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		is   error
	}{
		{"malformed json", `{"choices": [`, nil},
		{"empty choices", `{"choices": []}`, ErrNoChoices},
		{"missing choices", `{}`, ErrNoChoices},
		{"missing content", `{"choices":[{"message":{"role":"assistant"}}]}`, ErrNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL, time.Second).ChatCompletion(context.Background(), testMessages)

			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %T (%v)", err, err)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestClient_ChatCompletion_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := newTestClient(server.URL, 50*time.Millisecond).ChatCompletion(context.Background(), testMessages)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T (%v)", err, err)
	}
	if !IsTimeout(err) {
		t.Errorf("expected timeout, got %v", err)
	}
	if !strings.Contains(err.Error(), "Client.Timeout exceeded") {
		t.Errorf("expected timeout description, got %q", err.Error())
	}
}

func TestClient_ChatCompletion_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url, time.Second).ChatCompletion(context.Background(), testMessages)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T (%v)", err, err)
	}
	if IsTimeout(err) {
		t.Errorf("connection refused should not be reported as timeout")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(config.GroqConfig{APIKey: "k"}, zap.NewNop())

	if c.url != config.DefaultGroqURL {
		t.Errorf("expected default URL, got %q", c.url)
	}
	if c.model != config.DefaultGroqModel {
		t.Errorf("expected default model, got %q", c.model)
	}
	if c.httpClient.Timeout != 60*time.Second {
		t.Errorf("expected 60s timeout, got %v", c.httpClient.Timeout)
	}
}
