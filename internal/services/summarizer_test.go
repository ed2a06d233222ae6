package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerforge/interview-lab/internal/models"
)

type fakePracticeRepo struct {
	sessions map[uuid.UUID]*models.PracticeSession
	statuses []models.PracticeStatus
	summary  string
	errorMsg string
}

func newFakePracticeRepo(sessions ...*models.PracticeSession) *fakePracticeRepo {
	repo := &fakePracticeRepo{sessions: map[uuid.UUID]*models.PracticeSession{}}
	for _, s := range sessions {
		repo.sessions[s.ID] = s
	}
	return repo
}

func (f *fakePracticeRepo) Create(session *models.PracticeSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakePracticeRepo) FindByID(id uuid.UUID) (*models.PracticeSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("practice session not found")
	}
	return session, nil
}

func (f *fakePracticeRepo) UpdateStatus(id uuid.UUID, status models.PracticeStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakePracticeRepo) UpdateSummary(id uuid.UUID, summary string) error {
	f.statuses = append(f.statuses, models.StatusCompleted)
	f.summary = summary
	return nil
}

func (f *fakePracticeRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	f.statuses = append(f.statuses, models.StatusFailed)
	f.errorMsg = errorMsg
	return nil
}

func (f *fakePracticeRepo) FindPendingJobs(limit int) ([]models.PracticeSession, error) {
	return nil, nil
}

func archivedSession(t *testing.T) *models.PracticeSession {
	t.Helper()

	exchanges, err := json.Marshal([]models.Exchange{
		{Question: "q-one", Answer: "a-one", FeedbackSummary: "good", Score: 6},
		{Question: "q-two", Answer: "a-two", FeedbackSummary: "better", Score: 8},
	})
	require.NoError(t, err)

	return &models.PracticeSession{
		ID:        uuid.New(),
		UserID:    "user-1",
		Role:      "Backend Engineer",
		Exchanges: string(exchanges),
		Status:    models.StatusQueued,
	}
}

func TestSummarizeSession_HappyPath(t *testing.T) {
	session := archivedSession(t)
	repo := newFakePracticeRepo(session)
	gemini := &fakeGemini{response: "  Strong stories, weak metrics. Practice closing with numbers.  "}
	bank := &fakeBank{}

	summarizer := NewSessionSummarizer(repo, gemini, bank, 3)

	require.NoError(t, summarizer.SummarizeSession(context.Background(), session.ID))

	assert.Equal(t, []models.PracticeStatus{models.StatusProcessing, models.StatusCompleted}, repo.statuses)
	assert.Equal(t, "Strong stories, weak metrics. Practice closing with numbers.", repo.summary)
	assert.Contains(t, gemini.lastPrompt, "q-one")
	assert.Contains(t, gemini.lastPrompt, "q-two")
	// Every asked question lands in the exemplar bank.
	assert.Equal(t, []string{"q-one", "q-two"}, bank.indexed)
}

func TestSummarizeSession_GenerationFailureMarksFailed(t *testing.T) {
	session := archivedSession(t)
	repo := newFakePracticeRepo(session)
	gemini := &fakeGemini{err: errors.New("model unavailable")}

	summarizer := NewSessionSummarizer(repo, gemini, &fakeBank{}, 2)

	err := summarizer.SummarizeSession(context.Background(), session.ID)

	require.Error(t, err)
	assert.Contains(t, repo.statuses, models.StatusFailed)
	assert.NotEmpty(t, repo.errorMsg)
}

func TestSummarizeSession_EmptyExchangesMarksFailed(t *testing.T) {
	session := archivedSession(t)
	session.Exchanges = "[]"
	repo := newFakePracticeRepo(session)

	summarizer := NewSessionSummarizer(repo, &fakeGemini{}, &fakeBank{}, 2)

	err := summarizer.SummarizeSession(context.Background(), session.ID)

	require.Error(t, err)
	assert.Contains(t, repo.statuses, models.StatusFailed)
}

func TestSummarizeSession_BankIndexFailureDoesNotFailJob(t *testing.T) {
	session := archivedSession(t)
	repo := newFakePracticeRepo(session)
	gemini := &fakeGemini{response: "summary"}
	bank := &fakeBank{err: errors.New("qdrant unreachable")}

	summarizer := NewSessionSummarizer(repo, gemini, bank, 2)

	require.NoError(t, summarizer.SummarizeSession(context.Background(), session.ID))
	assert.Contains(t, repo.statuses, models.StatusCompleted)
}
