package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prepai/interview-api/internal/models"
)

type ResumeRepository interface {
	Save(profile models.Profile) (string, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Save implements ResumeRepository. It stores the extracted profile as JSON
// and returns the generated resume id.
func (r *resumeRepository) Save(profile models.Profile) (string, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}

	resume := models.Resume{
		ID:        uuid.New().String(),
		Profile:   string(payload),
		CreatedAt: time.Now(),
	}

	if err := r.db.Create(&resume).Error; err != nil {
		return "", fmt.Errorf("failed to save resume: %w", err)
	}

	return resume.ID, nil
}
