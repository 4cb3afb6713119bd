package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type scheduleRepo interface {
	GetDueByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.ReviewSchedule, error)
	Insert(ctx context.Context, schedule domain.ReviewSchedule) error
	GetOrCreateForUpdate(ctx context.Context, userID, quizID, questionID uuid.UUID, now time.Time) (domain.ReviewSchedule, error)
	Update(ctx context.Context, scheduleID uuid.UUID, params domain.ScheduleUpdateParams) (domain.ReviewSchedule, error)
	CountScheduled(ctx context.Context, userID, quizID uuid.UUID, questionIDs []uuid.UUID) (int, error)
}

type questionStore interface {
	QuestionIDs(ctx context.Context, quizID uuid.UUID) ([]uuid.UUID, error)
	QuestionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Question, error)
	QuizTitles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service owns the review-schedule lifecycle: it decides, per user and per
// question, when that question should next be presented for review.
type Service struct {
	schedules scheduleRepo
	questions questionStore
	tx        txManager
	log       *slog.Logger
	sm2       SM2Config
}

// NewService creates a new review scheduler service.
func NewService(
	log *slog.Logger,
	schedules scheduleRepo,
	questions questionStore,
	tx txManager,
	sm2 SM2Config,
) *Service {
	return &Service{
		schedules: schedules,
		questions: questions,
		tx:        tx,
		log:       log.With("service", "review"),
		sm2:       sm2,
	}
}
