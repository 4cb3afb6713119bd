package quiz

import (
	"strings"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

// CreateQuizInput holds parameters for creating a quiz.
type CreateQuizInput struct {
	Title    string
	Category string
}

// Validate validates the create input.
func (i CreateQuizInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if len(i.Category) > 100 {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddQuestionInput holds parameters for appending a question to a quiz.
type AddQuestionInput struct {
	QuizID        uuid.UUID
	Text          string
	Options       []string
	CorrectAnswer string
	Difficulty    domain.Difficulty
}

// Validate validates the question input. An empty difficulty defaults to
// medium, matching the quiz-editor behavior.
func (i *AddQuestionInput) Validate() error {
	var errs []domain.FieldError

	if i.QuizID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "quizId", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if strings.TrimSpace(i.CorrectAnswer) == "" {
		errs = append(errs, domain.FieldError{Field: "correctAnswer", Message: "required"})
	}

	if i.Difficulty == "" {
		i.Difficulty = domain.DifficultyMedium
	} else if !i.Difficulty.Valid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be easy, medium or hard"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
