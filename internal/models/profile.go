package models

// Profile is the structured view of a resume, produced once by the
// profile extractor and immutable afterwards.
type Profile struct {
	Name     string    `json:"name"`
	Skills   []string  `json:"skills"`
	Projects []Project `json:"projects,omitempty"`
	// Experience may come back from the model as a number of years or as
	// free text, so it is kept loosely typed.
	Experience any `json:"experience,omitempty"`
}

type Project struct {
	Name        string   `json:"name"`
	Tech        []string `json:"tech,omitempty"`
	Description string   `json:"description,omitempty"`
}

type QuestionType string

const (
	QuestionConceptual QuestionType = "conceptual"
	QuestionCoding     QuestionType = "coding"
)

// Question is identified by its position in the session's question list;
// it carries no independent identifier.
type Question struct {
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Hint     string       `json:"hint,omitempty"`
}

// Score is the structured evaluation of a single submitted answer.
// All three dimensions are on a 0-100 scale.
type Score struct {
	Correctness float64 `json:"correctness"`
	Depth       float64 `json:"depth"`
	Clarity     float64 `json:"clarity"`
	Feedback    string  `json:"feedback"`
}
