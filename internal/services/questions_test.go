package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"prepai/interview-api/internal/models"
)

const fiveQuestionsJSON = "```json\n" + `[
  {"type": "conceptual", "question": "Q1"},
  {"type": "conceptual", "question": "Q2"},
  {"type": "conceptual", "question": "Q3"},
  {"type": "coding", "question": "Q4", "hint": "H4"},
  {"type": "coding", "question": "Q5", "hint": "H5"}
]` + "\n```"

func testProfile() models.Profile {
	return models.Profile{Name: "A", Skills: []string{"X"}, Experience: 2}
}

func TestQuestionGeneratorGenerate(t *testing.T) {
	stub := &stubCompletion{response: fiveQuestionsJSON}
	generator := NewQuestionGenerator(stub)

	questions, err := generator.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}

	for i, q := range questions {
		if q.Type != models.QuestionConceptual && q.Type != models.QuestionCoding {
			t.Errorf("question %d has invalid type %q", i, q.Type)
		}
	}

	if questions[3].Hint != "H4" {
		t.Fatalf("question 3 hint = %q, want H4", questions[3].Hint)
	}

	if stub.lastMode != ModeStructured {
		t.Fatalf("expected structured mode, got %s", stub.lastMode)
	}
}

func TestQuestionGeneratorDeterministic(t *testing.T) {
	generator := NewQuestionGenerator(&stubCompletion{response: fiveQuestionsJSON})

	first, err := generator.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := generator.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same profile produced different questions:\n%v\n%v", first, second)
	}
}

func TestQuestionGeneratorEmptyList(t *testing.T) {
	generator := NewQuestionGenerator(&stubCompletion{response: "[]"})

	_, err := generator.Generate(context.Background(), testProfile())
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestQuestionGeneratorUnknownType(t *testing.T) {
	generator := NewQuestionGenerator(&stubCompletion{
		response: `[{"type": "riddle", "question": "Q1"}]`,
	})

	_, err := generator.Generate(context.Background(), testProfile())
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestQuestionGeneratorShortListAccepted(t *testing.T) {
	generator := NewQuestionGenerator(&stubCompletion{
		response: `[{"type": "conceptual", "question": "Q1"}, {"type": "coding", "question": "Q2", "hint": "H2"}]`,
	})

	questions, err := generator.Generate(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}
