package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerforge/interview-lab/internal/models"
)

const scoringResponse = `{
  "summary": "Clear incident story with a concrete outcome.",
  "star": {
    "situation": {"status": "strong", "note": "outage context is specific"},
    "task": {"status": "okay", "note": "personal responsibility stated"},
    "action": {"status": "strong", "note": "postmortem steps described"},
    "result": {"status": "light", "note": "no metrics for the fix"}
  },
  "strengths": ["ownership", "cross-team coordination"],
  "improvements": ["quantify impact"],
  "next_practice": "Rehearse ending every story with a number.",
  "score": 7
}`

func TestScore_ParsesStarFeedback(t *testing.T) {
	gemini := &fakeGemini{response: scoringResponse}
	scorer := NewAnswerScorer(gemini)

	feedback, err := scorer.Score(context.Background(), testContext(),
		"Tell me about a reliability incident you owned.",
		"I led the postmortem for a checkout outage and shipped a fix within a day.")

	require.NoError(t, err)
	assert.Equal(t, models.StarStrong, feedback.Star.Situation.Status)
	assert.Equal(t, models.StarOkay, feedback.Star.Task.Status)
	assert.Equal(t, models.StarStrong, feedback.Star.Action.Status)
	assert.Equal(t, models.StarLight, feedback.Star.Result.Status)
	assert.Equal(t, 7.0, feedback.Score)
	assert.NotEmpty(t, feedback.Summary)
	assert.Contains(t, gemini.lastPrompt, "Tell me about a reliability incident you owned.")
}

func TestScore_ClampsOutOfRangeScore(t *testing.T) {
	tests := []struct {
		name     string
		rawScore string
		want     float64
	}{
		{"above range", "14", 10},
		{"below range", "-3", 0},
	}

	star := `{"situation": {"status": "strong"}, "task": {"status": "okay"}, "action": {"status": "light"}, "result": {"status": "missing"}}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemini := &fakeGemini{response: `{"summary": "s", "star": ` + star + `, "score": ` + tt.rawScore + `}`}
			scorer := NewAnswerScorer(gemini)

			feedback, err := scorer.Score(context.Background(), testContext(), "q", "a long enough answer")

			require.NoError(t, err)
			assert.Equal(t, tt.want, feedback.Score)
		})
	}
}

func TestScore_RejectsUnknownStarStatus(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			"out-of-vocabulary status",
			`{"summary": "s", "star": {"situation": {"status": "excellent"}, "task": {"status": "okay"}, "action": {"status": "okay"}, "result": {"status": "okay"}}, "score": 7}`,
		},
		{
			"missing star block",
			`{"summary": "s", "star": {}, "score": 7}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemini := &fakeGemini{response: tt.response}
			scorer := NewAnswerScorer(gemini)

			_, err := scorer.Score(context.Background(), testContext(), "q", "a long enough answer")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "status")
		})
	}
}

func TestScore_UnparseableResponse(t *testing.T) {
	gemini := &fakeGemini{response: "not json at all"}
	scorer := NewAnswerScorer(gemini)

	_, err := scorer.Score(context.Background(), testContext(), "q", "a")

	assert.Error(t, err)
}
