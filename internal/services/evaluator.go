package services

import (
	"context"
	"fmt"
	"strings"

	"prepai/interview-api/internal/models"
)

// AnswerEvaluator grades answers in two steps: synthesize an ideal answer
// for grading context, then score the student's answer against it. Grounding
// the scorer in a freshly generated reference answer adapts to arbitrary
// question content without a rubric database.
type AnswerEvaluator interface {
	ExpectedAnswer(ctx context.Context, question string) (string, error)
	Scorer
}

// Scorer is the slice of AnswerEvaluator the session state machine needs.
type Scorer interface {
	Score(ctx context.Context, question, expectedAnswer, studentAnswer string) (models.Score, error)
}

type answerEvaluator struct {
	completion    CompletionClient
	promptBuilder *PromptBuilder
}

func NewAnswerEvaluator(completion CompletionClient) AnswerEvaluator {
	return &answerEvaluator{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
	}
}

// ExpectedAnswer implements AnswerEvaluator. One creative completion call.
func (e *answerEvaluator) ExpectedAnswer(ctx context.Context, question string) (string, error) {
	prompt := e.promptBuilder.BuildExpectedAnswerPrompt(question)

	answer, err := e.completion.Complete(ctx, systemExpectedAnswer, prompt, ModeCreative)
	if err != nil {
		return "", fmt.Errorf("failed to synthesize expected answer: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

// Score implements Scorer. One structured completion call, fence-strip,
// parse.
func (e *answerEvaluator) Score(ctx context.Context, question, expectedAnswer, studentAnswer string) (models.Score, error) {
	prompt := e.promptBuilder.BuildScoringPrompt(question, expectedAnswer, studentAnswer)

	raw, err := e.completion.Complete(ctx, systemScoring, prompt, ModeStructured)
	if err != nil {
		return models.Score{}, fmt.Errorf("failed to score answer: %w", err)
	}

	var score models.Score
	if err := DecodeModelJSON(raw, &score); err != nil {
		return models.Score{}, fmt.Errorf("failed to parse score: %w", err)
	}

	return score, nil
}
