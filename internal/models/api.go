package models

// QuestionView is the wire shape of a question handed to the candidate.
// QuestionID is the 0-based position inside the interview.
type QuestionView struct {
	QuestionID int          `json:"question_id"`
	Type       QuestionType `json:"type"`
	Question   string       `json:"question"`
	Hint       *string      `json:"hint"`
}

type UploadResumeResponse struct {
	Status  string  `json:"status"`
	Profile Profile `json:"profile"`
}

type StartInterviewResponse struct {
	InterviewID string        `json:"interview_id"`
	Question    *QuestionView `json:"question"`
}

type SubmitAnswerRequest struct {
	InterviewID string `json:"interview_id"`
	QuestionID  int    `json:"question_id"`
	Answer      string `json:"answer"`
}

type SubmitAnswerResponse struct {
	Status    string        `json:"status"`
	Question  *QuestionView `json:"question,omitempty"`
	Results   *Summary      `json:"results,omitempty"`
	LastScore Score         `json:"last_score"`
}

// AnswerResult pairs a question with everything produced while answering it.
type AnswerResult struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
	StudentAnswer  string `json:"student_answer"`
	Score          Score  `json:"score"`
}

// Summary aggregates the per-dimension averages over all scored answers.
// Averages are rounded to 2 decimal places.
type Summary struct {
	AverageScore float64        `json:"average_score"`
	Correctness  float64        `json:"correctness"`
	Depth        float64        `json:"depth"`
	Clarity      float64        `json:"clarity"`
	Strengths    []string       `json:"strengths"`
	WeakAreas    []string       `json:"weak_areas"`
	Results      []AnswerResult `json:"results"`
}
