package models

import (
	"strings"
	"time"
)

// Statuses the billing provider reports that count as an active plan.
var activeSubscriptionStatuses = map[string]struct{}{
	"active":    {},
	"trialing":  {},
	"paid":      {},
	"complete":  {},
	"succeeded": {},
}

type Subscription struct {
	UserID               string     `gorm:"type:text;primary_key" json:"user_id"`
	Status               string     `gorm:"type:text" json:"status"`
	Plan                 string     `gorm:"type:text" json:"plan"`
	EntitlementExpiresAt *time.Time `gorm:"type:timestamp" json:"entitlement_expires_at,omitempty"`
	LastEventID          string     `gorm:"type:text" json:"last_event_id"`
	CreatedAt            time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// BillingEvent is the payload the billing provider delivers to the webhook.
type BillingEvent struct {
	EventID   string     `json:"event_id"`
	UserID    string     `json:"user_id"`
	Status    string     `json:"status"`
	Plan      string     `json:"plan"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Entitled reports whether the subscription grants Pro access at the given time.
func (s *Subscription) Entitled(now time.Time) bool {
	if s == nil {
		return false
	}
	if _, ok := activeSubscriptionStatuses[strings.ToLower(s.Status)]; !ok {
		return false
	}
	if s.EntitlementExpiresAt == nil {
		return true
	}
	return s.EntitlementExpiresAt.After(now)
}
