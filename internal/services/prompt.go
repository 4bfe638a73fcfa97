package services

import "fmt"

const (
	systemProfileExtraction = `You are an expert technical recruiter and resume analyst.
Return only valid JSON. Do not include ` + "```" + ` or explanations.`

	systemQuestionGeneration = `You are a senior software engineer conducting a technical interview.
Return ONLY valid JSON. No markdown, no ` + "```" + ` fences.`

	systemExpectedAnswer = `You are an expert software engineer.`

	systemScoring = `You are a strict but fair technical interviewer.
Return only valid JSON. No markdown.`
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildProfileExtractionPrompt creates the prompt for resume parsing.
func (pb *PromptBuilder) BuildProfileExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`Extract the following resume into structured JSON with:
name, skills, projects (name, tech, description), experience.

Resume:
%s`, resumeText)
}

// BuildQuestionPrompt creates the prompt for question generation.
func (pb *PromptBuilder) BuildQuestionPrompt(profileJSON string) string {
	return fmt.Sprintf(`Based on this candidate profile, generate:
- 3 conceptual questions
- 2 coding questions with hints

Return JSON in this exact format:
[
  {
    "type": "conceptual",
    "question": "..."
  },
  {
    "type": "coding",
    "question": "...",
    "hint": "..."
  }
]

Candidate Profile:
%s`, profileJSON)
}

// BuildExpectedAnswerPrompt creates the prompt for synthesizing an ideal
// answer, used only as grading context and never shown to the candidate.
func (pb *PromptBuilder) BuildExpectedAnswerPrompt(question string) string {
	return fmt.Sprintf("Provide a high-quality ideal answer for this interview question:\n%s", question)
}

// BuildScoringPrompt creates the prompt for scoring a student answer
// against the ideal answer.
func (pb *PromptBuilder) BuildScoringPrompt(question, expectedAnswer, studentAnswer string) string {
	return fmt.Sprintf(`Question:
%s

Ideal Answer:
%s

Student Answer:
%s

Evaluate the student. Scores are 0-100. Return JSON with:
correctness, depth, clarity, feedback`, question, expectedAnswer, studentAnswer)
}
