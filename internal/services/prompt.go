package services

import (
	"fmt"
	"strings"

	"careerforge/interview-lab/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func focusText(areas []string) string {
	if len(areas) == 0 {
		return "leadership, collaboration, ownership, adaptability"
	}
	return strings.Join(areas, ", ")
}

func seniorityText(seniority string) string {
	if seniority == "" {
		return ""
	}
	return seniority + " "
}

// BuildNextQuestionPrompt creates the prompt for the next behavioral question
// in a running session. exemplarBlock may be empty when retrieval is off or failed.
func (pb *PromptBuilder) BuildNextQuestionPrompt(ctx models.InterviewContext, previousQuestions []string, exemplarBlock string) string {
	var history strings.Builder
	if len(previousQuestions) == 0 {
		history.WriteString("None yet. This is the opening question.")
	} else {
		for i, q := range previousQuestions {
			history.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
		}
	}

	exemplarSection := ""
	if exemplarBlock != "" {
		exemplarSection = fmt.Sprintf(`
EXAMPLE QUESTIONS THAT WORKED WELL FOR SIMILAR ROLES (style reference only, do not repeat verbatim):
%s
`, exemplarBlock)
	}

	return fmt.Sprintf(`You are a behavioral interview coach running a live mock interview for a %s%s candidate.

JOB DESCRIPTION:
%s

FOCUS AREAS: %s

QUESTIONS ALREADY ASKED:
%s
%s
Ask ONE new behavioral question that does not overlap the questions already asked,
tied to the responsibilities in the job description. Include a short follow-up probe
the interviewer could use if the answer stays too high-level.

Return ONLY valid JSON with this shape:
{
  "question": "the behavioral question",
  "follow_up": "one probing follow-up"
}`,
		seniorityText(ctx.Seniority), ctx.Role, ctx.JobDescription,
		focusText(ctx.FocusAreas), history.String(), exemplarSection)
}

// BuildAnswerScoringPrompt creates the STAR scoring prompt for a submitted answer.
func (pb *PromptBuilder) BuildAnswerScoringPrompt(ctx models.InterviewContext, question, answer string) string {
	return fmt.Sprintf(`You are a behavioral interview coach evaluating a candidate's answer for a %s%s role.

QUESTION ASKED:
%s

CANDIDATE'S ANSWER:
%s

Evaluate the answer with the STAR rubric. For each dimension (situation, task, action,
result) report a status of "strong", "okay", "light", or "missing" with a one-sentence
note. Then give an overall score from 0 to 10.

Return ONLY valid JSON with this shape:
{
  "summary": "2-3 sentence overall assessment",
  "star": {
    "situation": {"status": "strong|okay|light|missing", "note": "..."},
    "task": {"status": "strong|okay|light|missing", "note": "..."},
    "action": {"status": "strong|okay|light|missing", "note": "..."},
    "result": {"status": "strong|okay|light|missing", "note": "..."}
  },
  "strengths": ["..."],
  "improvements": ["..."],
  "next_practice": "one quick drill or reminder",
  "score": <0-10>
}

Be specific. Quote fragments of the answer to justify each status.`,
		seniorityText(ctx.Seniority), ctx.Role, question, answer)
}

// BuildQuestionPackPrompt creates the prompt for a one-shot question pack.
func (pb *PromptBuilder) BuildQuestionPackPrompt(req *models.QuestionPackRequest) string {
	return fmt.Sprintf(`You are a behavioral interview coach designing targeted prompts for a candidate interviewing for a %s%s.

Job description:
---
%s
---

Create %d behavioral interview questions tightly aligned to the responsibilities, culture, and focus areas: %s.
Return ONLY valid JSON with this shape:
{
  "role": "%s",
  "seniority": "%s",
  "questions": [
    {
      "question": "Write the question",
      "why_it_matters": "Tie back to the job description's expectations",
      "coaching_points": ["Tip 1", "Tip 2"],
      "signals": ["Impact area", "Soft skill"]
    }
  ]
}
Ensure "questions" has exactly %d entries.`,
		seniorityText(req.Seniority), req.Role, req.JobDescription,
		req.NumQuestions, focusText(req.FocusAreas),
		req.Role, req.Seniority, req.NumQuestions)
}

// BuildSessionSummaryPrompt creates the prompt the archive worker uses to
// produce an overall coaching summary for a finished practice run.
func (pb *PromptBuilder) BuildSessionSummaryPrompt(role, seniority string, exchanges []models.Exchange) string {
	var transcript strings.Builder
	for i, ex := range exchanges {
		transcript.WriteString(fmt.Sprintf("Q%d: %s\n", i+1, ex.Question))
		transcript.WriteString(fmt.Sprintf("A%d: %s\n", i+1, ex.Answer))
		if ex.FeedbackSummary != "" {
			transcript.WriteString(fmt.Sprintf("Per-answer feedback: %s (score %.1f/10)\n", ex.FeedbackSummary, ex.Score))
		}
		transcript.WriteString("\n")
	}

	return fmt.Sprintf(`You are a behavioral interview coach reviewing a full mock interview for a %s%s candidate.

SESSION TRANSCRIPT WITH PER-ANSWER FEEDBACK:
%s
Write a concise coaching summary (4-6 sentences) covering:
1. Patterns across the answers (recurring strengths and recurring gaps)
2. The single highest-leverage improvement before the real interview
3. One concrete practice exercise

Return ONLY the summary text, no JSON.`,
		seniorityText(seniority), role, transcript.String())
}

// FormatExemplarBlock renders retrieved question-bank hits for prompt injection.
func FormatExemplarBlock(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n")
}
