package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careerforge/interview-lab/internal/models"
)

func TestBuildNextQuestionPrompt_IncludesHistory(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildNextQuestionPrompt(testContext(), []string{
		"Tell me about a reliability incident you owned.",
		"Describe a time you pushed back on a deadline.",
	}, "")

	assert.Contains(t, prompt, "Tell me about a reliability incident you owned.")
	assert.Contains(t, prompt, "Describe a time you pushed back on a deadline.")
	assert.Contains(t, prompt, "incident response")
	assert.NotContains(t, prompt, "EXAMPLE QUESTIONS")
}

func TestBuildNextQuestionPrompt_OpeningQuestion(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildNextQuestionPrompt(testContext(), nil, "")

	assert.Contains(t, prompt, "opening question")
}

func TestBuildNextQuestionPrompt_ExemplarBlock(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildNextQuestionPrompt(testContext(), nil, "1. An exemplar question")

	assert.Contains(t, prompt, "EXAMPLE QUESTIONS")
	assert.Contains(t, prompt, "An exemplar question")
}

func TestBuildSessionSummaryPrompt_IncludesEveryExchange(t *testing.T) {
	pb := NewPromptBuilder()

	exchanges := []models.Exchange{
		{Question: "q-one", Answer: "a-one", FeedbackSummary: "good start", Score: 6},
		{Question: "q-two", Answer: "a-two", FeedbackSummary: "stronger result", Score: 8},
	}

	prompt := pb.BuildSessionSummaryPrompt("Backend Engineer", "Senior", exchanges)

	for _, ex := range exchanges {
		assert.Contains(t, prompt, ex.Question)
		assert.Contains(t, prompt, ex.Answer)
		assert.Contains(t, prompt, ex.FeedbackSummary)
	}
	assert.Contains(t, prompt, "Senior Backend Engineer")
}

func TestFocusText_Default(t *testing.T) {
	assert.Equal(t, "leadership, collaboration, ownership, adaptability", focusText(nil))
	assert.Equal(t, "a, b", focusText([]string{"a", "b"}))
}

func TestFormatExemplarBlock(t *testing.T) {
	assert.Empty(t, FormatExemplarBlock(nil))

	block := FormatExemplarBlock([]SearchResult{
		{Text: " first question "},
		{Text: "second question"},
	})
	assert.Equal(t, "1. first question\n2. second question", block)
}
