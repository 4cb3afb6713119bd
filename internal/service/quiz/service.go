package quiz

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type quizRepo interface {
	Create(ctx context.Context, q domain.Quiz) (domain.Quiz, error)
	GetByID(ctx context.Context, quizID uuid.UUID) (domain.Quiz, error)
	List(ctx context.Context, filter domain.QuizFilter) ([]domain.Quiz, int, error)
	AddQuestion(ctx context.Context, q domain.Question) (domain.Question, error)
	DeleteQuestion(ctx context.Context, quizID, questionID uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

// scheduler is the review-scheduler hook fired when a user views a quiz.
type scheduler interface {
	CreateInitialSchedules(ctx context.Context, quizID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements quiz and question management.
type Service struct {
	quizzes   quizRepo
	users     userRepo
	scheduler scheduler
	log       *slog.Logger
}

// NewService creates a new quiz service.
func NewService(log *slog.Logger, quizzes quizRepo, users userRepo, scheduler scheduler) *Service {
	return &Service{
		quizzes:   quizzes,
		users:     users,
		scheduler: scheduler,
		log:       log.With("service", "quiz"),
	}
}
