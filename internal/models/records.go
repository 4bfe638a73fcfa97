package models

import "time"

// Append-only audit records. The interview state machine never reads these
// back; they exist as a durable trail of what happened.

type Resume struct {
	ID        string    `gorm:"type:text;primary_key" json:"id"`
	Profile   string    `gorm:"type:text" json:"profile"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Resume) TableName() string {
	return "resumes"
}

type Interview struct {
	ID        string    `gorm:"type:text;primary_key" json:"id"`
	ResumeID  string    `gorm:"type:text;not null" json:"resume_id"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Resume Resume `gorm:"foreignKey:ResumeID" json:"-"`
}

func (Interview) TableName() string {
	return "interviews"
}

type QuestionRecord struct {
	ID          string    `gorm:"type:text;primary_key" json:"id"`
	InterviewID string    `gorm:"type:text;not null" json:"interview_id"`
	Question    string    `gorm:"type:text" json:"question"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Interview Interview `gorm:"foreignKey:InterviewID" json:"-"`
}

func (QuestionRecord) TableName() string {
	return "questions"
}

type AnswerRecord struct {
	ID            string    `gorm:"type:text;primary_key" json:"id"`
	QuestionID    string    `gorm:"type:text;not null" json:"question_id"`
	StudentAnswer string    `gorm:"type:text" json:"student_answer"`
	Correctness   float64   `json:"correctness"`
	Depth         float64   `json:"depth"`
	Clarity       float64   `json:"clarity"`
	Feedback      string    `gorm:"type:text" json:"feedback"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Question QuestionRecord `gorm:"foreignKey:QuestionID" json:"-"`
}

func (AnswerRecord) TableName() string {
	return "answers"
}
