package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerforge/interview-lab/internal/models"
)

type PracticeSessionRepository interface {
	Create(session *models.PracticeSession) error
	FindByID(id uuid.UUID) (*models.PracticeSession, error)
	UpdateStatus(id uuid.UUID, status models.PracticeStatus) error
	UpdateSummary(id uuid.UUID, summary string) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.PracticeSession, error)
}

type practiceSessionRepository struct {
	db *gorm.DB
}

func NewPracticeSessionRepository(db *gorm.DB) PracticeSessionRepository {
	return &practiceSessionRepository{db: db}
}

func (r *practiceSessionRepository) Create(session *models.PracticeSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create practice session: %w", err)
	}
	return nil
}

func (r *practiceSessionRepository) FindByID(id uuid.UUID) (*models.PracticeSession, error) {
	var session models.PracticeSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("practice session not found")
		}
		return nil, fmt.Errorf("failed to find practice session: %w", err)
	}
	return &session, nil
}

func (r *practiceSessionRepository) UpdateStatus(id uuid.UUID, status models.PracticeStatus) error {
	result := r.db.Model(&models.PracticeSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("practice session not found")
	}

	return nil
}

func (r *practiceSessionRepository) UpdateSummary(id uuid.UUID, summary string) error {
	result := r.db.Model(&models.PracticeSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          models.StatusCompleted,
			"overall_summary": summary,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update summary: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("practice session not found")
	}

	return nil
}

func (r *practiceSessionRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.PracticeSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("practice session not found")
	}

	return nil
}

func (r *practiceSessionRepository) FindPendingJobs(limit int) ([]models.PracticeSession, error) {
	var sessions []models.PracticeSession
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&sessions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return sessions, nil
}
