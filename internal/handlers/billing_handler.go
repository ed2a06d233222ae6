package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"careerforge/interview-lab/internal/models"
	"careerforge/interview-lab/internal/repositories"
)

type BillingHandler struct {
	subscriptionRepo repositories.SubscriptionRepository
}

func NewBillingHandler(subscriptionRepo repositories.SubscriptionRepository) *BillingHandler {
	return &BillingHandler{subscriptionRepo: subscriptionRepo}
}

// HandleEvent handles POST /billing/events. Billing providers redeliver
// events, so the last applied event id is tracked per user and duplicates are
// acknowledged without a write.
func (h *BillingHandler) HandleEvent(c *fiber.Ctx) error {
	var event models.BillingEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if event.EventID == "" || event.UserID == "" || event.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "event_id, user_id and status are required",
		})
	}

	existing, err := h.subscriptionRepo.FindByUserID(event.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load subscription",
		})
	}

	if existing != nil && existing.LastEventID == event.EventID {
		return c.JSON(fiber.Map{"status": "duplicate"})
	}

	sub := &models.Subscription{
		UserID:               event.UserID,
		Status:               event.Status,
		Plan:                 event.Plan,
		EntitlementExpiresAt: event.ExpiresAt,
		LastEventID:          event.EventID,
	}
	if existing != nil {
		sub.CreatedAt = existing.CreatedAt
	}

	if err := h.subscriptionRepo.Upsert(sub); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to store subscription",
		})
	}

	log.Printf("✅ Applied billing event %s for user %s (%s)\n", event.EventID, event.UserID, event.Status)
	return c.JSON(fiber.Map{"status": "applied"})
}
