package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerforge/interview-lab/internal/models"
	"careerforge/interview-lab/internal/repositories"
	"careerforge/interview-lab/internal/services"
)

type PracticeHandler struct {
	practiceRepo repositories.PracticeSessionRepository
	entitlement  services.EntitlementService
	worker       services.Worker
}

func NewPracticeHandler(
	practiceRepo repositories.PracticeSessionRepository,
	entitlement services.EntitlementService,
	worker services.Worker,
) *PracticeHandler {
	return &PracticeHandler{
		practiceRepo: practiceRepo,
		entitlement:  entitlement,
		worker:       worker,
	}
}

// HandleArchive handles POST /practice-sessions. Archiving is the caller's
// explicit opt-in; the turn endpoint itself never persists anything.
func (h *PracticeHandler) HandleArchive(c *fiber.Ctx) error {
	userID := c.Get(CallerIDHeader)
	if err := h.entitlement.RequirePro(userID); err != nil {
		return err
	}

	var req models.ArchiveSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Exchanges) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "exchanges is required",
		})
	}

	if req.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role is required",
		})
	}

	exchangesJSON, err := json.Marshal(req.Exchanges)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid exchange data",
		})
	}

	focusJSON, err := json.Marshal(services.NormalizeFocusAreas(req.FocusAreas))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid focus area data",
		})
	}

	session := &models.PracticeSession{
		ID:             uuid.New(),
		UserID:         userID,
		Role:           req.Role,
		Seniority:      req.Seniority,
		JobDescription: req.JobDescription,
		FocusAreas:     string(focusJSON),
		Exchanges:      string(exchangesJSON),
		Status:         models.StatusQueued,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.practiceRepo.Create(session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to archive practice session",
		})
	}

	h.worker.EnqueueJob(session.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ArchiveSessionResponse{
		ID:     session.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// HandleGet handles GET /practice-sessions/:id
func (h *PracticeHandler) HandleGet(c *fiber.Ctx) error {
	userID := c.Get(CallerIDHeader)
	if err := h.entitlement.RequirePro(userID); err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := h.practiceRepo.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Practice session not found",
		})
	}

	// Sessions are private to their owner.
	if session.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Practice session not found",
		})
	}

	exchanges, err := session.DecodeExchanges()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to decode session data",
		})
	}

	resp := models.PracticeSessionResponse{
		ID:        session.ID.String(),
		Status:    string(session.Status),
		Role:      session.Role,
		Exchanges: exchanges,
	}

	if session.Status == models.StatusCompleted {
		resp.OverallSummary = session.OverallSummary
	}

	if session.Status == models.StatusFailed {
		resp.ErrorMessage = session.ErrorMessage
	}

	return c.JSON(resp)
}
