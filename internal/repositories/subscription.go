package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"careerforge/interview-lab/internal/models"
)

type SubscriptionRepository interface {
	FindByUserID(userID string) (*models.Subscription, error)
	Upsert(sub *models.Subscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// FindByUserID returns nil without error when the user has no subscription
// record at all, so callers can treat that as "not entitled" rather than a
// storage failure.
func (r *subscriptionRepository) FindByUserID(userID string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := r.db.Where("user_id = ?", userID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	return &sub, nil
}

func (r *subscriptionRepository) Upsert(sub *models.Subscription) error {
	if err := r.db.Save(sub).Error; err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}
