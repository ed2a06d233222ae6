package services

import (
	"fmt"
	"time"

	"careerforge/interview-lab/internal/apperrors"
	"careerforge/interview-lab/internal/repositories"
)

// EntitlementService gates Pro-only endpoints on the caller's subscription.
type EntitlementService interface {
	RequirePro(userID string) error
}

type entitlementService struct {
	subRepo repositories.SubscriptionRepository
	now     func() time.Time
}

func NewEntitlementService(subRepo repositories.SubscriptionRepository) EntitlementService {
	return &entitlementService{
		subRepo: subRepo,
		now:     time.Now,
	}
}

// RequirePro implements EntitlementService.
func (e *entitlementService) RequirePro(userID string) error {
	if userID == "" {
		return apperrors.New(apperrors.KindUnauthenticated, "caller identity is required")
	}

	sub, err := e.subRepo.FindByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to check entitlement: %w", err)
	}

	if !sub.Entitled(e.now()) {
		return apperrors.New(apperrors.KindEntitlementRequired, "this feature requires a Pro subscription")
	}

	return nil
}
