package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careerforge/interview-lab/internal/models"
	"careerforge/interview-lab/internal/services"
)

type QuestionPackHandler struct {
	packService services.QuestionPackService
}

func NewQuestionPackHandler(packService services.QuestionPackService) *QuestionPackHandler {
	return &QuestionPackHandler{
		packService: packService,
	}
}

// HandleGenerate handles POST /interview/questions
func (h *QuestionPackHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.QuestionPackRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	pack, err := h.packService.Generate(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return c.JSON(pack)
}
