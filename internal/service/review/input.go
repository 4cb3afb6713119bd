package review

import (
	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

// UpdateReviewInput holds parameters for recording a review attempt.
//
// Quality is the 0-5 rating of the recall; values outside that range are not
// rejected here because the SM-2 arithmetic is total, but the designed range
// is 0 (forgot) to 5 (perfect).
type UpdateReviewInput struct {
	QuizID     uuid.UUID
	QuestionID uuid.UUID
	Quality    int
}

// Validate validates the update input.
func (i UpdateReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.QuizID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "quizId", Message: "required"})
	}
	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "questionId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
