package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"prepai/interview-api/internal/models"
)

type SessionState string

const (
	SessionInProgress SessionState = "in_progress"
	SessionComplete   SessionState = "complete"
)

// Session is a stateful, in-progress interview. It owns the ordered question
// list, the precomputed expected answers, the current position, and the
// accumulated results. Invariant: 0 <= currentIdx <= len(questions); the
// session is complete exactly when they are equal.
//
// All mutation happens inside Submit under the session mutex, so concurrent
// duplicate submissions for the same session serialize instead of corrupting
// the index.
type Session struct {
	mu sync.Mutex

	id        string
	profile   models.Profile
	questions []models.Question
	// expected answers and audit question record ids, index-aligned with
	// questions.
	expected    []string
	questionIDs []string

	currentIdx int
	results    []models.AnswerResult
	createdAt  time.Time

	scorer Scorer
}

// SubmitOutcome is everything produced by one accepted answer submission.
type SubmitOutcome struct {
	Score            models.Score
	QuestionRecordID string
	Next             *models.QuestionView
	Completed        bool
	Results          *models.Summary
}

// NewSession constructs a session positioned at the first question. The
// expected answers must already be fully synthesized; a session is never
// created in a partially started state.
func NewSession(id string, profile models.Profile, questions []models.Question, expected, questionIDs []string, scorer Scorer) (*Session, error) {
	if len(expected) != len(questions) {
		return nil, fmt.Errorf("expected answers (%d) do not match questions (%d)", len(expected), len(questions))
	}
	if len(questionIDs) != len(questions) {
		return nil, fmt.Errorf("question record ids (%d) do not match questions (%d)", len(questionIDs), len(questions))
	}

	return &Session{
		id:          id,
		profile:     profile,
		questions:   questions,
		expected:    expected,
		questionIDs: questionIDs,
		currentIdx:  0,
		createdAt:   time.Now(),
		scorer:      scorer,
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) Profile() models.Profile {
	return s.profile
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentIdx >= len(s.questions) {
		return SessionComplete
	}
	return SessionInProgress
}

func (s *Session) Completed() bool {
	return s.State() == SessionComplete
}

func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIdx
}

func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// NextQuestion returns the question at the current position, or nil once
// the interview is complete.
func (s *Session) NextQuestion() *models.QuestionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextQuestionLocked()
}

func (s *Session) nextQuestionLocked() *models.QuestionView {
	if s.currentIdx >= len(s.questions) {
		return nil
	}

	q := s.questions[s.currentIdx]
	view := &models.QuestionView{
		QuestionID: s.currentIdx,
		Type:       q.Type,
		Question:   q.Question,
	}
	if q.Hint != "" {
		hint := q.Hint
		view.Hint = &hint
	}

	return view
}

// Submit scores the answer for the question at index and advances the
// session. It is valid only when index equals the current position and the
// interview is still in progress; any rejection or scoring failure leaves
// the session unmutated. The mutex is held across the scoring call so the
// validate-score-append-advance sequence is atomic per session.
func (s *Session) Submit(ctx context.Context, index int, studentAnswer string) (SubmitOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentIdx >= len(s.questions) {
		return SubmitOutcome{}, ErrInterviewComplete
	}
	if index != s.currentIdx {
		return SubmitOutcome{}, fmt.Errorf("%w: got %d, want %d", ErrAnswerOutOfOrder, index, s.currentIdx)
	}

	question := s.questions[index]
	score, err := s.scorer.Score(ctx, question.Question, s.expected[index], studentAnswer)
	if err != nil {
		return SubmitOutcome{}, err
	}

	s.results = append(s.results, models.AnswerResult{
		Question:       question.Question,
		ExpectedAnswer: s.expected[index],
		StudentAnswer:  studentAnswer,
		Score:          score,
	})
	s.currentIdx++

	outcome := SubmitOutcome{
		Score:            score,
		QuestionRecordID: s.questionIDs[index],
		Next:             s.nextQuestionLocked(),
		Completed:        s.currentIdx >= len(s.questions),
	}
	if outcome.Completed {
		summary := s.summaryLocked()
		outcome.Results = &summary
	}

	return outcome, nil
}

// Summary is valid at any point of the interview and reports the results
// accumulated so far, in question order.
func (s *Session) Summary() models.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

func (s *Session) summaryLocked() models.Summary {
	summary := models.Summary{
		Strengths: []string{},
		WeakAreas: []string{},
		Results:   append([]models.AnswerResult(nil), s.results...),
	}
	if summary.Results == nil {
		summary.Results = []models.AnswerResult{}
	}

	if len(s.results) == 0 {
		return summary
	}

	var correctness, depth, clarity float64
	for _, r := range s.results {
		correctness += r.Score.Correctness
		depth += r.Score.Depth
		clarity += r.Score.Clarity
	}

	n := float64(len(s.results))
	summary.Correctness = round2(correctness / n)
	summary.Depth = round2(depth / n)
	summary.Clarity = round2(clarity / n)
	summary.AverageScore = round2((correctness + depth + clarity) / (3 * n))

	dimensions := []struct {
		name string
		avg  float64
	}{
		{"correctness", summary.Correctness},
		{"depth", summary.Depth},
		{"clarity", summary.Clarity},
	}
	for _, d := range dimensions {
		switch {
		case d.avg >= 75:
			summary.Strengths = append(summary.Strengths, fmt.Sprintf("Strong %s", d.name))
		case d.avg < 60:
			summary.WeakAreas = append(summary.WeakAreas, fmt.Sprintf("Could improve %s", d.name))
		}
	}

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
