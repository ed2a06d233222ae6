package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"careerforge/interview-lab/internal/models"
	"careerforge/interview-lab/internal/repositories"
)

// SessionSummarizer is the worker job: generate the overall coaching summary
// for an archived practice session and feed its questions into the bank.
type SessionSummarizer interface {
	SummarizeSession(ctx context.Context, sessionID uuid.UUID) error
}

type sessionSummarizer struct {
	practiceRepo  repositories.PracticeSessionRepository
	gemini        GeminiService
	bank          QuestionBankService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewSessionSummarizer(
	practiceRepo repositories.PracticeSessionRepository,
	gemini GeminiService,
	bank QuestionBankService,
	maxRetries int,
) SessionSummarizer {
	return &sessionSummarizer{
		practiceRepo:  practiceRepo,
		gemini:        gemini,
		bank:          bank,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// SummarizeSession implements SessionSummarizer.
func (s *sessionSummarizer) SummarizeSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.practiceRepo.UpdateStatus(sessionID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	session, err := s.practiceRepo.FindByID(sessionID)
	if err != nil {
		s.practiceRepo.UpdateError(sessionID, err.Error())
		return fmt.Errorf("failed to load session: %w", err)
	}

	exchanges, err := session.DecodeExchanges()
	if err != nil {
		s.practiceRepo.UpdateError(sessionID, fmt.Sprintf("invalid exchange data: %v", err))
		return fmt.Errorf("failed to decode exchanges: %w", err)
	}

	if len(exchanges) == 0 {
		s.practiceRepo.UpdateError(sessionID, "session has no exchanges to summarize")
		return fmt.Errorf("session %s has no exchanges", sessionID)
	}

	prompt := s.promptBuilder.BuildSessionSummaryPrompt(session.Role, session.Seniority, exchanges)

	summary, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.5, s.maxRetries)
	if err != nil {
		s.practiceRepo.UpdateError(sessionID, fmt.Sprintf("failed to generate summary: %v", err))
		return fmt.Errorf("failed to generate summary: %w", err)
	}

	if err := s.practiceRepo.UpdateSummary(sessionID, strings.TrimSpace(summary)); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}

	// Indexing grows the exemplar bank; failures here don't fail the job.
	if s.bank != nil {
		for _, ex := range exchanges {
			if err := s.bank.IndexQuestion(ctx, sessionID.String(), session.Role, ex.Question); err != nil {
				log.Printf("⚠️  Failed to index question for session %s: %v\n", sessionID, err)
			}
		}
	}

	log.Printf("✅ Practice session %s summarized\n", sessionID)
	return nil
}
