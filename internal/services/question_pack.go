package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"careerforge/interview-lab/internal/apperrors"
	"careerforge/interview-lab/internal/models"
)

const (
	defaultPackSize = 5
	maxPackSize     = 10
)

// QuestionPackService generates a full set of prep questions in one shot,
// without the turn-by-turn feedback loop.
type QuestionPackService interface {
	Generate(ctx context.Context, req *models.QuestionPackRequest) (*models.QuestionPackResponse, error)
}

type questionPackService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

func NewQuestionPackService(gemini GeminiService, timeout time.Duration) QuestionPackService {
	return &questionPackService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

// Generate implements QuestionPackService.
func (s *questionPackService) Generate(ctx context.Context, req *models.QuestionPackRequest) (*models.QuestionPackResponse, error) {
	if len(strings.TrimSpace(req.JobDescription)) < minJobDescriptionLen {
		return nil, apperrors.New(apperrors.KindInvalidContext,
			fmt.Sprintf("job_description must be at least %d characters", minJobDescriptionLen))
	}
	if len(strings.TrimSpace(req.Role)) < minRoleLen {
		return nil, apperrors.New(apperrors.KindInvalidContext, "role is required")
	}

	req.FocusAreas = NormalizeFocusAreas(req.FocusAreas)
	if req.NumQuestions <= 0 {
		req.NumQuestions = defaultPackSize
	}
	if req.NumQuestions > maxPackSize {
		req.NumQuestions = maxPackSize
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := s.promptBuilder.BuildQuestionPackPrompt(req)

	response, err := s.gemini.GenerateText(ctx, prompt, 0.65)
	if err != nil {
		return nil, upstreamError("question pack generation failed", err)
	}

	var pack models.QuestionPackResponse
	if err := decodeLLMJSON(response, &pack); err != nil {
		return nil, apperrors.Wrap(apperrors.KindUpstreamGenerationFailed,
			"question pack response could not be parsed", err)
	}

	if len(pack.Questions) == 0 {
		return nil, apperrors.New(apperrors.KindUpstreamGenerationFailed,
			"model returned no questions")
	}

	// Echo the request's role even when the model rewrites it.
	pack.Role = req.Role
	pack.Seniority = req.Seniority

	return &pack, nil
}
