package services

import (
	"context"
	"fmt"
	"log"

	"careerforge/interview-lab/internal/models"
)

// QuestionGenerator produces the next behavioral question for a session.
type QuestionGenerator interface {
	NextQuestion(ctx context.Context, ic models.InterviewContext, previousQuestions []string) (*GeneratedQuestion, error)
}

type GeneratedQuestion struct {
	Question string `json:"question"`
	FollowUp string `json:"follow_up"`
}

type geminiQuestionGenerator struct {
	gemini        GeminiService
	bank          QuestionBankService
	promptBuilder *PromptBuilder
}

func NewQuestionGenerator(gemini GeminiService, bank QuestionBankService) QuestionGenerator {
	return &geminiQuestionGenerator{
		gemini:        gemini,
		bank:          bank,
		promptBuilder: NewPromptBuilder(),
	}
}

// NextQuestion implements QuestionGenerator. Question-bank retrieval is
// best-effort; a failed lookup degrades to a prompt without exemplars.
func (g *geminiQuestionGenerator) NextQuestion(ctx context.Context, ic models.InterviewContext, previousQuestions []string) (*GeneratedQuestion, error) {
	exemplarBlock := ""
	if g.bank != nil {
		exemplars, err := g.bank.FindExemplars(ctx, ic.JobDescription, 3)
		if err != nil {
			log.Printf("⚠️  Question bank lookup failed, generating without exemplars: %v\n", err)
		} else {
			exemplarBlock = FormatExemplarBlock(exemplars)
		}
	}

	prompt := g.promptBuilder.BuildNextQuestionPrompt(ic, previousQuestions, exemplarBlock)

	response, err := g.gemini.GenerateText(ctx, prompt, 0.65)
	if err != nil {
		return nil, fmt.Errorf("failed to generate question: %w", err)
	}

	var generated GeneratedQuestion
	if err := decodeLLMJSON(response, &generated); err != nil {
		return nil, fmt.Errorf("failed to parse question response: %w", err)
	}

	if generated.Question == "" {
		return nil, fmt.Errorf("model returned an empty question")
	}

	return &generated, nil
}
