package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSummarizer struct {
	done chan uuid.UUID
}

func (r *recordingSummarizer) SummarizeSession(ctx context.Context, sessionID uuid.UUID) error {
	r.done <- sessionID
	return nil
}

func TestWorker_ProcessesEnqueuedJobs(t *testing.T) {
	repo := newFakePracticeRepo()
	summarizer := &recordingSummarizer{done: make(chan uuid.UUID, 1)}

	w := NewWorker(repo, summarizer, 1, time.Hour)
	w.Start(context.Background())
	defer w.Stop()

	sessionID := uuid.New()
	w.EnqueueJob(sessionID)

	select {
	case got := <-summarizer.done:
		assert.Equal(t, sessionID, got)
	case <-time.After(2 * time.Second):
		require.Fail(t, "worker did not process the job in time")
	}
}

func TestWorker_StopIsIdempotentForEnqueue(t *testing.T) {
	repo := newFakePracticeRepo()
	summarizer := &recordingSummarizer{done: make(chan uuid.UUID, 1)}

	w := NewWorker(repo, summarizer, 1, time.Hour)
	w.Start(context.Background())
	w.Stop()

	// Enqueue after stop must not block or panic.
	w.EnqueueJob(uuid.New())
}
