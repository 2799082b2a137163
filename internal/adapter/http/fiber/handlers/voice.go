package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/arktech/arktech-brain/internal/domain"
	"github.com/arktech/arktech-brain/internal/ports"
)

type VoiceHandler struct {
	assistant ports.Assistant
	log       *zap.Logger
}

func NewVoiceHandler(assistant ports.Assistant, log *zap.Logger) *VoiceHandler {
	return &VoiceHandler{
		assistant: assistant,
		log:       log,
	}
}

// Ask handles POST /ask. Every recognised outcome, including provider
// failures, is a 200 with an action or speech body.
func (h *VoiceHandler) Ask(c *fiber.Ctx) error {
	var req domain.AskRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Warn("Invalid ask body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	resp, err := h.assistant.Ask(c.UserContext(), req.Text)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
