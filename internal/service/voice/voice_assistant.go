package voice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arktech/arktech-brain/internal/adapter/ai/groq"
	"github.com/arktech/arktech-brain/internal/domain"
	"github.com/arktech/arktech-brain/internal/ports"
)

const MissingKeyMessage = "ArkTech is missing GROQ API key."

// VoiceAssistant routes utterances to device actions or to the chat provider.
// It holds no per-request state and may be shared across goroutines.
type VoiceAssistant struct {
	provider     ports.ChatProvider
	hasAPIKey    bool
	systemPrompt string
	logger       *zap.Logger
}

func NewVoiceAssistant(
	provider ports.ChatProvider,
	hasAPIKey bool,
	systemPrompt string,
	logger *zap.Logger,
) *VoiceAssistant {
	return &VoiceAssistant{
		provider:     provider,
		hasAPIKey:    hasAPIKey,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Ask answers one utterance. Recognised failures come back as speech; a
// non-nil error means something outside those categories went wrong.
func (va *VoiceAssistant) Ask(ctx context.Context, text string) (*domain.Response, error) {
	// The key check runs before routing, so even action phrases are refused
	// while the service is unconfigured.
	if !va.hasAPIKey {
		return domain.NewSpeech(MissingKeyMessage), nil
	}

	intent := ParseIntent(text)
	va.logger.Debug("Intent parsed", zap.String("intent", intent.Name))

	if intent.Name != domain.IntentChat {
		return domain.NewAction(intent.Name, intent.Slots), nil
	}

	return va.chat(ctx, text)
}

func (va *VoiceAssistant) chat(ctx context.Context, text string) (*domain.Response, error) {
	messages := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: va.systemPrompt},
		{Role: domain.RoleUser, Content: text},
	}

	answer, err := va.provider.ChatCompletion(ctx, messages)
	if err == nil {
		return domain.NewSpeech(answer), nil
	}

	askID := uuid.NewString()

	var statusErr *groq.StatusError
	var transportErr *groq.TransportError
	var decodeErr *groq.DecodeError

	switch {
	case errors.As(err, &statusErr):
		va.logger.Warn("Provider returned error status",
			zap.String("ask_id", askID),
			zap.Int("status", statusErr.Code),
		)
		return domain.NewSpeech(fmt.Sprintf("Groq error %d: %s", statusErr.Code, statusErr.Body)), nil

	case errors.As(err, &transportErr):
		va.logger.Warn("Provider request failed",
			zap.String("ask_id", askID),
			zap.Bool("timeout", transportErr.Timeout()),
			zap.Error(err),
		)
		return domain.NewSpeech("Server exception: " + transportErr.Error()), nil

	case errors.As(err, &decodeErr):
		va.logger.Warn("Provider response malformed",
			zap.String("ask_id", askID),
			zap.Error(err),
		)
		return domain.NewSpeech("Server exception: " + decodeErr.Error()), nil
	}

	va.logger.Error("Unexpected chat failure", zap.String("ask_id", askID), zap.Error(err))
	return nil, fmt.Errorf("voice: chat %s: %w", askID, err)
}
