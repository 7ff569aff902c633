package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterviewResult is one append-only row of interview_results. A generated
// question and its later evaluation are separate rows, correlated only by
// user_id, session_id (when supplied) and created_at.
type InterviewResult struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"type:text;not null;index" json:"user_id"`
	SessionID  *string   `gorm:"type:text;index" json:"session_id,omitempty"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     *string   `gorm:"type:text" json:"answer,omitempty"`
	Evaluation *string   `gorm:"type:text" json:"evaluation,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (InterviewResult) TableName() string {
	return "interview_results"
}

func (r *InterviewResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// NewQuestionResult builds the row written after a question is generated.
func NewQuestionResult(userID, sessionID, question string) *InterviewResult {
	return &InterviewResult{
		UserID:    userID,
		SessionID: optional(sessionID),
		Question:  question,
	}
}

// NewEvaluationResult builds the row written after an answer is evaluated.
func NewEvaluationResult(userID, sessionID, question, answer, evaluation string) *InterviewResult {
	return &InterviewResult{
		UserID:     userID,
		SessionID:  optional(sessionID),
		Question:   question,
		Answer:     &answer,
		Evaluation: &evaluation,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
