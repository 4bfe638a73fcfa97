package services

import (
	"context"

	"prepai/interview-api/internal/models"
)

// stubCompletion is a deterministic CompletionClient for tests. If
// responses is set it is consumed call by call, repeating the last entry;
// otherwise response is returned every time.
type stubCompletion struct {
	response  string
	responses []string
	err       error

	calls      int
	lastSystem string
	lastUser   string
	lastMode   CompletionMode
}

func (s *stubCompletion) Complete(_ context.Context, systemPrompt, userPrompt string, mode CompletionMode) (string, error) {
	s.calls++
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	s.lastMode = mode

	if s.err != nil {
		return "", s.err
	}

	if len(s.responses) > 0 {
		idx := s.calls - 1
		if idx >= len(s.responses) {
			idx = len(s.responses) - 1
		}
		return s.responses[idx], nil
	}

	return s.response, nil
}

type stubScorer struct {
	score models.Score
	err   error
	calls int
}

func (s *stubScorer) Score(_ context.Context, question, expectedAnswer, studentAnswer string) (models.Score, error) {
	s.calls++
	if s.err != nil {
		return models.Score{}, s.err
	}
	return s.score, nil
}
