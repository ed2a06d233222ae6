package services

import (
	"context"
	"fmt"

	"careerforge/interview-lab/internal/models"
)

// AnswerScorer grades a submitted answer against the question it responds to.
type AnswerScorer interface {
	Score(ctx context.Context, ic models.InterviewContext, question, answer string) (*models.Feedback, error)
}

type geminiAnswerScorer struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewAnswerScorer(gemini GeminiService) AnswerScorer {
	return &geminiAnswerScorer{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// Score implements AnswerScorer.
func (s *geminiAnswerScorer) Score(ctx context.Context, ic models.InterviewContext, question, answer string) (*models.Feedback, error) {
	prompt := s.promptBuilder.BuildAnswerScoringPrompt(ic, question, answer)

	response, err := s.gemini.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("failed to score answer: %w", err)
	}

	var feedback models.Feedback
	if err := decodeLLMJSON(response, &feedback); err != nil {
		return nil, fmt.Errorf("failed to parse scoring response: %w", err)
	}
	if err := validateStarStatuses(&feedback.Star); err != nil {
		return nil, fmt.Errorf("failed to parse scoring response: %w", err)
	}

	// Clamp rather than reject; the model occasionally drifts out of range.
	if feedback.Score < 0 {
		feedback.Score = 0
	}
	if feedback.Score > 10 {
		feedback.Score = 10
	}

	return &feedback, nil
}

// The model must grade every dimension with one of the four statuses; anything
// else is treated as an unparseable response.
func validateStarStatuses(star *models.StarFeedback) error {
	dimensions := []struct {
		name   string
		status models.StarStatus
	}{
		{"situation", star.Situation.Status},
		{"task", star.Task.Status},
		{"action", star.Action.Status},
		{"result", star.Result.Status},
	}

	for _, dim := range dimensions {
		if !dim.status.Valid() {
			return fmt.Errorf("invalid %s status %q", dim.name, dim.status)
		}
	}
	return nil
}
