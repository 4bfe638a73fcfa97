package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"prepai/interview-api/internal/models"
)

// InterviewService drives a full interview: question generation and eager
// expected-answer synthesis at start, then one scoring call per submitted
// answer.
type InterviewService interface {
	StartInterview(ctx context.Context, profile models.Profile) (*Session, error)
	SubmitAnswer(ctx context.Context, interviewID string, questionID int, studentAnswer string) (SubmitOutcome, error)
}

type interviewService struct {
	generator QuestionGenerator
	evaluator AnswerEvaluator
	store     *SessionStore
	audit     AuditRecorder
}

// NewInterviewService wires the interview pipeline. audit may be nil, in
// which case no trail is written.
func NewInterviewService(
	generator QuestionGenerator,
	evaluator AnswerEvaluator,
	store *SessionStore,
	audit AuditRecorder,
) InterviewService {
	return &interviewService{
		generator: generator,
		evaluator: evaluator,
		store:     store,
		audit:     audit,
	}
}

// StartInterview implements InterviewService. Expected answers for every
// question are synthesized up front, strictly in question order, trading
// start latency for stateless per-answer scoring later. The session is
// committed to the store only after every completion call has succeeded, so
// a failure mid-way leaves nothing behind.
func (s *interviewService) StartInterview(ctx context.Context, profile models.Profile) (*Session, error) {
	questions, err := s.generator.Generate(ctx, profile)
	if err != nil {
		return nil, err
	}

	expected := make([]string, len(questions))
	for i, q := range questions {
		answer, err := s.evaluator.ExpectedAnswer(ctx, q.Question)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		expected[i] = answer
	}

	questionIDs := make([]string, len(questions))
	for i := range questionIDs {
		questionIDs[i] = uuid.New().String()
	}

	session, err := NewSession(uuid.New().String(), profile, questions, expected, questionIDs, s.evaluator)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(session); err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.RecordInterviewStart(session.ID(), profile, questions, questionIDs)
	}

	log.Printf("🎤 Interview %s started with %d questions\n", session.ID(), len(questions))

	return session, nil
}

// SubmitAnswer implements InterviewService.
func (s *interviewService) SubmitAnswer(ctx context.Context, interviewID string, questionID int, studentAnswer string) (SubmitOutcome, error) {
	session, err := s.store.Get(interviewID)
	if err != nil {
		return SubmitOutcome{}, err
	}

	outcome, err := session.Submit(ctx, questionID, studentAnswer)
	if err != nil {
		return SubmitOutcome{}, err
	}

	if s.audit != nil {
		s.audit.RecordAnswer(outcome.QuestionRecordID, studentAnswer, outcome.Score)
	}

	return outcome, nil
}
