package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/interview-coach/internal/models"
)

// InterviewResultRepository is write-only: rows are appended, never updated,
// deleted or read back by this service.
type InterviewResultRepository interface {
	Create(ctx context.Context, result *models.InterviewResult) error
}

type interviewResultRepository struct {
	db *gorm.DB
}

func NewInterviewResultRepository(db *gorm.DB) InterviewResultRepository {
	return &interviewResultRepository{db: db}
}

// Create implements InterviewResultRepository.
func (r *interviewResultRepository) Create(ctx context.Context, result *models.InterviewResult) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to insert interview result: %w", err)
	}
	return nil
}
