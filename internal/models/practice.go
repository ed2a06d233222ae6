package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PracticeStatus string

const (
	StatusQueued     PracticeStatus = "queued"
	StatusProcessing PracticeStatus = "processing"
	StatusCompleted  PracticeStatus = "completed"
	StatusFailed     PracticeStatus = "failed"
)

// Exchange is one question/answer pair captured from a finished practice run,
// with the per-turn feedback the caller received.
type Exchange struct {
	Question        string  `json:"question"`
	Answer          string  `json:"answer"`
	FeedbackSummary string  `json:"feedback_summary,omitempty"`
	Score           float64 `json:"score"`
}

type PracticeSession struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         string         `gorm:"type:text;not null" json:"user_id"`
	Role           string         `gorm:"type:text" json:"role"`
	Seniority      string         `gorm:"type:text" json:"seniority,omitempty"`
	JobDescription string         `gorm:"type:text" json:"job_description"`
	FocusAreas     string         `gorm:"type:jsonb" json:"focus_areas,omitempty"`
	Exchanges      string         `gorm:"type:jsonb" json:"exchanges"`
	Status         PracticeStatus `gorm:"not null;default:'queued'" json:"status"`
	OverallSummary *string        `gorm:"type:text" json:"overall_summary,omitempty"`
	ErrorMessage   *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

// DecodeExchanges unpacks the stored jsonb exchange list.
func (p *PracticeSession) DecodeExchanges() ([]Exchange, error) {
	if p.Exchanges == "" {
		return nil, nil
	}
	var exchanges []Exchange
	if err := json.Unmarshal([]byte(p.Exchanges), &exchanges); err != nil {
		return nil, err
	}
	return exchanges, nil
}

// DecodeFocusAreas unpacks the stored jsonb focus-area list.
func (p *PracticeSession) DecodeFocusAreas() ([]string, error) {
	if p.FocusAreas == "" {
		return nil, nil
	}
	var areas []string
	if err := json.Unmarshal([]byte(p.FocusAreas), &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

type ArchiveSessionRequest struct {
	Role           string     `json:"role"`
	Seniority      string     `json:"seniority,omitempty"`
	JobDescription string     `json:"job_description"`
	FocusAreas     []string   `json:"focus_areas,omitempty"`
	Exchanges      []Exchange `json:"exchanges"`
}

type ArchiveSessionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type PracticeSessionResponse struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	Role           string     `json:"role"`
	Exchanges      []Exchange `json:"exchanges"`
	OverallSummary *string    `json:"overall_summary,omitempty"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
}
