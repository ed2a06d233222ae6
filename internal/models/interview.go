package models

// StarStatus grades one STAR dimension of an answer.
type StarStatus string

const (
	StarStrong  StarStatus = "strong"
	StarOkay    StarStatus = "okay"
	StarLight   StarStatus = "light"
	StarMissing StarStatus = "missing"
)

// Valid reports whether the status is one of the four grades.
func (s StarStatus) Valid() bool {
	switch s {
	case StarStrong, StarOkay, StarLight, StarMissing:
		return true
	}
	return false
}

type InterviewContext struct {
	JobDescription  string   `json:"job_description"`
	Role            string   `json:"role"`
	Seniority       string   `json:"seniority,omitempty"`
	FocusAreas      []string `json:"focus_areas,omitempty"`
	TargetQuestions int      `json:"target_questions"`
}

// TurnRequest is one exchange in the assistant dialogue. The caller echoes
// the full question history each turn; the server keeps no session state.
type TurnRequest struct {
	InterviewContext
	PreviousQuestions []string `json:"previous_questions"`
	Answer            string   `json:"answer,omitempty"`
}

// IsBootstrap reports whether this turn opens a session (no answer submitted).
func (r *TurnRequest) IsBootstrap() bool {
	return r.Answer == ""
}

type Question struct {
	Text     string `json:"question"`
	FollowUp string `json:"follow_up"`
	Index    int    `json:"index"`
}

type StarDimensionFeedback struct {
	Status StarStatus `json:"status"`
	Note   string     `json:"note"`
}

type StarFeedback struct {
	Situation StarDimensionFeedback `json:"situation"`
	Task      StarDimensionFeedback `json:"task"`
	Action    StarDimensionFeedback `json:"action"`
	Result    StarDimensionFeedback `json:"result"`
}

type Feedback struct {
	Summary      string       `json:"summary"`
	Star         StarFeedback `json:"star"`
	Strengths    []string     `json:"strengths"`
	Improvements []string     `json:"improvements"`
	NextPractice string       `json:"next_practice,omitempty"`
	Score        float64      `json:"score"`
}

type TurnResponse struct {
	Question       string    `json:"question"`
	FollowUp       string    `json:"follow_up"`
	QuestionIndex  int       `json:"question_index"`
	TotalQuestions int       `json:"total_questions"`
	Feedback       *Feedback `json:"feedback,omitempty"`
}

type TranscriptionResponse struct {
	Text string `json:"text"`
}

type PackQuestion struct {
	Question       string   `json:"question"`
	WhyItMatters   string   `json:"why_it_matters"`
	CoachingPoints []string `json:"coaching_points"`
	Signals        []string `json:"signals"`
}

// QuestionPackRequest asks for a full set of questions up front, without the
// turn-by-turn feedback loop.
type QuestionPackRequest struct {
	JobDescription string   `json:"job_description"`
	Role           string   `json:"role"`
	Seniority      string   `json:"seniority,omitempty"`
	FocusAreas     []string `json:"focus_areas,omitempty"`
	NumQuestions   int      `json:"num_questions"`
}

type QuestionPackResponse struct {
	Role      string         `json:"role"`
	Seniority string         `json:"seniority,omitempty"`
	Questions []PackQuestion `json:"questions"`
}

type JobDescriptionResponse struct {
	JobDescription string `json:"job_description"`
	PageCount      int    `json:"page_count"`
}
