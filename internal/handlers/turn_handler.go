package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careerforge/interview-lab/internal/models"
	"careerforge/interview-lab/internal/services"
)

// CallerIDHeader carries the opaque caller identity set by the identity
// provider fronting this API.
const CallerIDHeader = "X-User-ID"

type TurnHandler struct {
	orchestrator services.TurnOrchestrator
}

func NewTurnHandler(orchestrator services.TurnOrchestrator) *TurnHandler {
	return &TurnHandler{
		orchestrator: orchestrator,
	}
}

// HandleTurn handles POST /interview/turn
func (h *TurnHandler) HandleTurn(c *fiber.Ctx) error {
	var req models.TurnRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	userID := c.Get(CallerIDHeader)

	resp, err := h.orchestrator.RunTurn(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
