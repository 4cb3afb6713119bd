package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
	"github.com/aditya-zanzad/quizapp-backend/pkg/ctxutil"
)

// CreateQuiz creates an empty quiz. Only admin and premium users may create
// quizzes; admins are credited as "Admin", premium users by name.
func (s *Service) CreateQuiz(ctx context.Context, input CreateQuizInput) (*domain.Quiz, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	role := domain.Role(ctxutil.UserRoleFromCtx(ctx))
	if !role.CanCreateQuizzes() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	createdByName := "Admin"
	var createdByID *uuid.UUID
	if role == domain.RolePremium {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get quiz author: %w", err)
		}
		createdByName = user.Name
		createdByID = &user.ID
	}

	now := time.Now().UTC()
	quiz, err := s.quizzes.Create(ctx, domain.Quiz{
		ID:            uuid.New(),
		Title:         input.Title,
		Category:      input.Category,
		CreatedByID:   createdByID,
		CreatedByName: createdByName,
		Questions:     []domain.Question{},
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	s.log.InfoContext(ctx, "quiz created",
		slog.String("quiz_id", quiz.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return &quiz, nil
}

// GetQuiz returns a quiz with its questions. For an authenticated caller it
// also seeds the caller's review schedules for the quiz's questions; the
// first view is what makes questions enter the spaced-repetition rotation.
// A scheduling failure is logged but does not fail the view.
func (s *Service) GetQuiz(ctx context.Context, quizID uuid.UUID) (*domain.Quiz, error) {
	quiz, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}

	if _, ok := ctxutil.UserIDFromCtx(ctx); ok {
		if err := s.scheduler.CreateInitialSchedules(ctx, quizID); err != nil {
			s.log.ErrorContext(ctx, "failed to create initial review schedules",
				slog.String("quiz_id", quizID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return &quiz, nil
}

// ListQuizzes returns quizzes matching the filter plus a total count.
func (s *Service) ListQuizzes(ctx context.Context, filter domain.QuizFilter) ([]domain.Quiz, int, error) {
	quizzes, total, err := s.quizzes.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list quizzes: %w", err)
	}
	return quizzes, total, nil
}

// AddQuestion appends a question to a quiz. Requires a quiz-creating role.
func (s *Service) AddQuestion(ctx context.Context, input AddQuestionInput) (*domain.Question, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	role := domain.Role(ctxutil.UserRoleFromCtx(ctx))
	if !role.CanCreateQuizzes() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	question, err := s.quizzes.AddQuestion(ctx, domain.Question{
		ID:            uuid.New(),
		QuizID:        input.QuizID,
		Text:          input.Text,
		Options:       input.Options,
		CorrectAnswer: input.CorrectAnswer,
		Difficulty:    input.Difficulty,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("add question: %w", err)
	}

	s.log.InfoContext(ctx, "question added",
		slog.String("quiz_id", input.QuizID.String()),
		slog.String("question_id", question.ID.String()),
	)

	return &question, nil
}

// DeleteQuestion removes a question from a quiz. Requires a quiz-creating
// role. Review schedules pointing at the question are intentionally left
// behind; the due list reports them with absent question content.
func (s *Service) DeleteQuestion(ctx context.Context, quizID, questionID uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	role := domain.Role(ctxutil.UserRoleFromCtx(ctx))
	if !role.CanCreateQuizzes() {
		return domain.ErrForbidden
	}

	if err := s.quizzes.DeleteQuestion(ctx, quizID, questionID); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("quiz_id", quizID.String()),
		slog.String("question_id", questionID.String()),
	)

	return nil
}
