package mocks

import (
	"context"
	"sync"

	"github.com/arktech/arktech-brain/internal/domain"
)

// MockChatProvider is a mock implementation of ports.ChatProvider
type MockChatProvider struct {
	ChatCompletionFunc func(ctx context.Context, messages []domain.ChatMessage) (string, error)

	mu    sync.Mutex
	calls [][]domain.ChatMessage
}

func (m *MockChatProvider) ChatCompletion(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, messages)
	m.mu.Unlock()

	if m.ChatCompletionFunc != nil {
		return m.ChatCompletionFunc(ctx, messages)
	}
	return "", nil
}

// Calls returns the message lists passed to ChatCompletion, in call order.
func (m *MockChatProvider) Calls() [][]domain.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]domain.ChatMessage, len(m.calls))
	copy(out, m.calls)
	return out
}

// MockAssistant is a mock implementation of ports.Assistant
type MockAssistant struct {
	AskFunc func(ctx context.Context, text string) (*domain.Response, error)
}

func (m *MockAssistant) Ask(ctx context.Context, text string) (*domain.Response, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, text)
	}
	return domain.NewSpeech(""), nil
}
