package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerforge/interview-lab/internal/models"
)

type fakeSubscriptionRepo struct {
	subs    map[string]*models.Subscription
	upserts int
}

func newFakeSubscriptionRepo(subs ...*models.Subscription) *fakeSubscriptionRepo {
	repo := &fakeSubscriptionRepo{subs: make(map[string]*models.Subscription)}
	for _, sub := range subs {
		repo.subs[sub.UserID] = sub
	}
	return repo
}

func (f *fakeSubscriptionRepo) FindByUserID(userID string) (*models.Subscription, error) {
	sub, ok := f.subs[userID]
	if !ok {
		return nil, nil
	}
	return sub, nil
}

func (f *fakeSubscriptionRepo) Upsert(sub *models.Subscription) error {
	f.upserts++
	f.subs[sub.UserID] = sub
	return nil
}

func newBillingApp(repo *fakeSubscriptionRepo) *fiber.App {
	app := newTestApp()
	app.Post("/billing/events", NewBillingHandler(repo).HandleEvent)
	return app
}

func TestHandleBillingEvent_StoresSubscription(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	app := newBillingApp(repo)

	expires := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	rec := postJSON(t, app, "/billing/events", models.BillingEvent{
		EventID:   "evt-1",
		UserID:    "user-1",
		Status:    "active",
		Plan:      "pro-monthly",
		ExpiresAt: &expires,
	}, nil)

	assert.Equal(t, fiber.StatusOK, rec.Code)

	sub := repo.subs["user-1"]
	require.NotNil(t, sub)
	assert.Equal(t, "active", sub.Status)
	assert.Equal(t, "pro-monthly", sub.Plan)
	assert.Equal(t, "evt-1", sub.LastEventID)
	require.NotNil(t, sub.EntitlementExpiresAt)
	assert.True(t, sub.EntitlementExpiresAt.Equal(expires))
}

func TestHandleBillingEvent_DuplicateDeliveryIgnored(t *testing.T) {
	repo := newFakeSubscriptionRepo(&models.Subscription{
		UserID:      "user-1",
		Status:      "active",
		LastEventID: "evt-1",
	})
	app := newBillingApp(repo)

	rec := postJSON(t, app, "/billing/events", models.BillingEvent{
		EventID: "evt-1",
		UserID:  "user-1",
		Status:  "canceled",
	}, nil)

	assert.Equal(t, fiber.StatusOK, rec.Code)
	assert.Zero(t, repo.upserts)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "duplicate", body["status"])
	assert.Equal(t, "active", repo.subs["user-1"].Status)
}

func TestHandleBillingEvent_NewEventUpdatesStatus(t *testing.T) {
	repo := newFakeSubscriptionRepo(&models.Subscription{
		UserID:      "user-1",
		Status:      "active",
		LastEventID: "evt-1",
	})
	app := newBillingApp(repo)

	rec := postJSON(t, app, "/billing/events", models.BillingEvent{
		EventID: "evt-2",
		UserID:  "user-1",
		Status:  "canceled",
	}, nil)

	assert.Equal(t, fiber.StatusOK, rec.Code)
	assert.Equal(t, 1, repo.upserts)
	assert.Equal(t, "canceled", repo.subs["user-1"].Status)
	assert.Equal(t, "evt-2", repo.subs["user-1"].LastEventID)
}

func TestHandleBillingEvent_MissingFields(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	app := newBillingApp(repo)

	tests := []struct {
		name  string
		event models.BillingEvent
	}{
		{"no event id", models.BillingEvent{UserID: "user-1", Status: "active"}},
		{"no user id", models.BillingEvent{EventID: "evt-1", Status: "active"}},
		{"no status", models.BillingEvent{EventID: "evt-1", UserID: "user-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, app, "/billing/events", tt.event, nil)
			assert.Equal(t, fiber.StatusBadRequest, rec.Code)
		})
	}

	assert.Zero(t, repo.upserts)
}
