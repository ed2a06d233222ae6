package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"careerforge/interview-lab/internal/apperrors"
	"careerforge/interview-lab/internal/models"
	"careerforge/interview-lab/internal/services"
)

type TranscribeHandler struct {
	entitlement services.EntitlementService
	transcriber services.TranscriptionService
	maxBytes    int64
}

func NewTranscribeHandler(
	entitlement services.EntitlementService,
	transcriber services.TranscriptionService,
	maxBytes int64,
) *TranscribeHandler {
	return &TranscribeHandler{
		entitlement: entitlement,
		transcriber: transcriber,
		maxBytes:    maxBytes,
	}
}

// HandleTranscribe handles POST /interview/transcribe. The clip lives only in
// memory for the duration of the request.
func (h *TranscribeHandler) HandleTranscribe(c *fiber.Ctx) error {
	userID := c.Get(CallerIDHeader)
	if err := h.entitlement.RequirePro(userID); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return apperrors.New(apperrors.KindEmptyAudio, "multipart field 'audio' is required")
	}

	if fileHeader.Size > h.maxBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "audio clip too large",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read audio upload",
		})
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read audio upload",
		})
	}

	text, err := h.transcriber.Transcribe(c.UserContext(), audio, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return err
	}

	return c.JSON(models.TranscriptionResponse{Text: text})
}
