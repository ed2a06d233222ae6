package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"careerforge/interview-lab/internal/repositories"
)

// Worker drains the archive queue: each job is a practice session waiting for
// its coaching summary.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(sessionID uuid.UUID)
}

type worker struct {
	practiceRepo repositories.PracticeSessionRepository
	summarizer   SessionSummarizer
	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewWorker(
	practiceRepo repositories.PracticeSessionRepository,
	summarizer SessionSummarizer,
	concurrency int,
	pollInterval time.Duration,
) Worker {
	return &worker{
		practiceRepo: practiceRepo,
		summarizer:   summarizer,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Pick up rows left queued across restarts.
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(sessionID uuid.UUID) {
	select {
	case w.jobQueue <- sessionID:
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue session %s\n", sessionID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case sessionID := <-w.jobQueue:
			if err := w.summarizer.SummarizeSession(ctx, sessionID); err != nil {
				log.Printf("❌ Worker #%d failed to summarize session %s: %v\n", workerID, sessionID, err)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pendingJobs, err := w.practiceRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending jobs: %v\n", err)
				continue
			}

			for _, job := range pendingJobs {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
