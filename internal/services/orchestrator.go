package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"careerforge/interview-lab/internal/apperrors"
	"careerforge/interview-lab/internal/models"
)

const (
	minJobDescriptionLen = 30
	minRoleLen           = 2
	minAnswerLen         = 12
	maxAnswerLen         = 3500
	maxHistoryLen        = 12
	maxFocusAreas        = 12
	defaultTargetCount   = 4
	maxTargetCount       = 8
)

// TurnOrchestrator runs one exchange of the assistant dialogue. The server
// keeps no session state; the caller echoes previous_questions each turn.
type TurnOrchestrator interface {
	RunTurn(ctx context.Context, userID string, req *models.TurnRequest) (*models.TurnResponse, error)
}

type turnOrchestrator struct {
	entitlement EntitlementService
	generator   QuestionGenerator
	scorer      AnswerScorer
	timeout     time.Duration
}

func NewTurnOrchestrator(
	entitlement EntitlementService,
	generator QuestionGenerator,
	scorer AnswerScorer,
	timeout time.Duration,
) TurnOrchestrator {
	return &turnOrchestrator{
		entitlement: entitlement,
		generator:   generator,
		scorer:      scorer,
		timeout:     timeout,
	}
}

// RunTurn implements TurnOrchestrator. Validation failures never reach a
// collaborator.
func (o *turnOrchestrator) RunTurn(ctx context.Context, userID string, req *models.TurnRequest) (*models.TurnResponse, error) {
	if err := o.entitlement.RequirePro(userID); err != nil {
		return nil, err
	}

	if err := validateTurnRequest(req); err != nil {
		return nil, err
	}

	ic := req.InterviewContext
	ic.FocusAreas = NormalizeFocusAreas(ic.FocusAreas)
	if ic.TargetQuestions <= 0 {
		ic.TargetQuestions = defaultTargetCount
	}
	if ic.TargetQuestions > maxTargetCount {
		ic.TargetQuestions = maxTargetCount
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if req.IsBootstrap() {
		return o.bootstrap(ctx, ic)
	}
	return o.scoreAndAdvance(ctx, ic, req)
}

func (o *turnOrchestrator) bootstrap(ctx context.Context, ic models.InterviewContext) (*models.TurnResponse, error) {
	generated, err := o.generator.NextQuestion(ctx, ic, nil)
	if err != nil {
		return nil, upstreamError("question generation failed", err)
	}

	return &models.TurnResponse{
		Question:       generated.Question,
		FollowUp:       generated.FollowUp,
		QuestionIndex:  1,
		TotalQuestions: ic.TargetQuestions,
	}, nil
}

// scoreAndAdvance scores the submitted answer against the last issued question
// and generates the next question. The two upstream calls are independent, so
// they run concurrently. When only the generator fails, the previous question
// is repeated instead of dropping the feedback the caller paid a turn for.
func (o *turnOrchestrator) scoreAndAdvance(ctx context.Context, ic models.InterviewContext, req *models.TurnRequest) (*models.TurnResponse, error) {
	lastQuestion := req.PreviousQuestions[len(req.PreviousQuestions)-1]

	var (
		wg        sync.WaitGroup
		feedback  *models.Feedback
		scoreErr  error
		generated *GeneratedQuestion
		genErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		feedback, scoreErr = o.scorer.Score(ctx, ic, lastQuestion, req.Answer)
	}()
	go func() {
		defer wg.Done()
		generated, genErr = o.generator.NextQuestion(ctx, ic, req.PreviousQuestions)
	}()
	wg.Wait()

	if scoreErr != nil {
		return nil, upstreamError("answer scoring failed", scoreErr)
	}

	resp := &models.TurnResponse{
		QuestionIndex:  len(req.PreviousQuestions) + 1,
		TotalQuestions: ic.TargetQuestions,
		Feedback:       feedback,
	}

	if genErr != nil {
		log.Printf("⚠️  Next-question generation failed, repeating previous question: %v\n", genErr)
		resp.Question = lastQuestion
		resp.FollowUp = ""
		return resp, nil
	}

	resp.Question = generated.Question
	resp.FollowUp = generated.FollowUp
	return resp, nil
}

// validateTurnRequest checks character counts, not byte lengths, so non-ASCII
// input is measured the same way the caller sees it.
func validateTurnRequest(req *models.TurnRequest) error {
	if utf8.RuneCountInString(strings.TrimSpace(req.JobDescription)) < minJobDescriptionLen {
		return apperrors.New(apperrors.KindInvalidContext,
			fmt.Sprintf("job_description must be at least %d characters", minJobDescriptionLen))
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.Role)) < minRoleLen {
		return apperrors.New(apperrors.KindInvalidContext, "role is required")
	}

	if len(req.FocusAreas) > maxFocusAreas {
		return apperrors.New(apperrors.KindInvalidContext,
			fmt.Sprintf("at most %d focus areas are supported", maxFocusAreas))
	}

	if len(req.PreviousQuestions) > maxHistoryLen {
		return apperrors.New(apperrors.KindInvalidContext,
			fmt.Sprintf("at most %d previous questions are supported", maxHistoryLen))
	}

	if req.Answer != "" {
		if utf8.RuneCountInString(strings.TrimSpace(req.Answer)) < minAnswerLen {
			return apperrors.New(apperrors.KindInvalidAnswer,
				fmt.Sprintf("answer must be at least %d characters", minAnswerLen))
		}
		if utf8.RuneCountInString(req.Answer) > maxAnswerLen {
			return apperrors.New(apperrors.KindInvalidAnswer,
				fmt.Sprintf("answer must be at most %d characters", maxAnswerLen))
		}
		if len(req.PreviousQuestions) == 0 {
			return apperrors.New(apperrors.KindInvalidAnswer,
				"an answer was submitted but no previous question is present")
		}
	}

	return nil
}

// upstreamError maps collaborator failures onto the API error taxonomy.
func upstreamError(message string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.KindUpstreamTimeout, message, err)
	}
	return apperrors.Wrap(apperrors.KindUpstreamGenerationFailed, message, err)
}
