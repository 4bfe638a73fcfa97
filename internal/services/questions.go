package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"prepai/interview-api/internal/models"
)

// expectedQuestionCount is the fixed generation policy: 3 conceptual + 2
// coding questions.
const expectedQuestionCount = 5

type QuestionGenerator interface {
	Generate(ctx context.Context, profile models.Profile) ([]models.Question, error)
}

type questionGenerator struct {
	completion    CompletionClient
	promptBuilder *PromptBuilder
}

func NewQuestionGenerator(completion CompletionClient) QuestionGenerator {
	return &questionGenerator{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
	}
}

// Generate implements QuestionGenerator. The returned order is the model's
// order. An empty list or an unknown question type is treated as a
// malformed response; any other count than 5 is accepted with a warning.
func (g *questionGenerator) Generate(ctx context.Context, profile models.Profile) ([]models.Question, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	prompt := g.promptBuilder.BuildQuestionPrompt(string(profileJSON))

	raw, err := g.completion.Complete(ctx, systemQuestionGeneration, prompt, ModeStructured)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	var questions []models.Question
	if err := DecodeModelJSON(raw, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse questions: %w", err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: empty question list", ErrMalformedResponse)
	}

	for i, q := range questions {
		if q.Type != models.QuestionConceptual && q.Type != models.QuestionCoding {
			return nil, fmt.Errorf("%w: unknown question type %q at index %d", ErrMalformedResponse, q.Type, i)
		}
		if q.Question == "" {
			return nil, fmt.Errorf("%w: empty question text at index %d", ErrMalformedResponse, i)
		}
	}

	if len(questions) != expectedQuestionCount {
		log.Printf("⚠️  Question generator returned %d questions, expected %d\n", len(questions), expectedQuestionCount)
	}

	return questions, nil
}
