package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepai/interview-api/internal/models"
)

type InterviewRepository interface {
	Create(interviewID, resumeID string) error
	SaveQuestion(questionID, interviewID, question string) error
	SaveAnswer(questionID, studentAnswer string, score models.Score) (string, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Create implements InterviewRepository. The interview id doubles as the
// in-memory session id, so the caller generates it.
func (r *interviewRepository) Create(interviewID, resumeID string) error {
	interview := models.Interview{
		ID:        interviewID,
		ResumeID:  resumeID,
		CreatedAt: time.Now(),
	}

	if err := r.db.Create(&interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}

	return nil
}

// SaveQuestion implements InterviewRepository. Question record ids are
// assigned by the caller at interview start so that answers can later
// reference the true per-question id.
func (r *interviewRepository) SaveQuestion(questionID, interviewID, question string) error {
	record := models.QuestionRecord{
		ID:          questionID,
		InterviewID: interviewID,
		Question:    question,
		CreatedAt:   time.Now(),
	}

	if err := r.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	return nil
}

// SaveAnswer implements InterviewRepository and returns the generated
// answer id.
func (r *interviewRepository) SaveAnswer(questionID, studentAnswer string, score models.Score) (string, error) {
	record := models.AnswerRecord{
		ID:            uuid.New().String(),
		QuestionID:    questionID,
		StudentAnswer: studentAnswer,
		Correctness:   score.Correctness,
		Depth:         score.Depth,
		Clarity:       score.Clarity,
		Feedback:      score.Feedback,
		CreatedAt:     time.Now(),
	}

	if err := r.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to save answer: %w", err)
	}

	return record.ID, nil
}
