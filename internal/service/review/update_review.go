package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
	"github.com/aditya-zanzad/quizapp-backend/pkg/ctxutil"
)

// UpdateReview records a review attempt and reschedules the question using
// the SM-2 calculation.
//
// If no schedule exists yet for the (user, quiz, question) triple, a default
// one is created on the spot: first review of a question the user was never
// formally exposed to is not an error. The schedule row is locked for the
// duration of the transaction, so concurrent updates of the same triple
// (a double-submitting client) serialize instead of losing writes, and the
// five mutable fields are always committed together.
func (s *Service) UpdateReview(ctx context.Context, input UpdateReviewInput) (*domain.ReviewSchedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var updated domain.ReviewSchedule
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		schedule, err := s.schedules.GetOrCreateForUpdate(txCtx, userID, input.QuizID, input.QuestionID, now)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		out := CalculateNextReview(SM2Input{
			CurrentEase:     schedule.EaseFactor,
			CurrentReps:     schedule.Repetitions,
			CurrentInterval: schedule.IntervalDays,
			Quality:         input.Quality,
			Now:             now,
			Config:          s.sm2,
		})

		updated, err = s.schedules.Update(txCtx, schedule.ID, domain.ScheduleUpdateParams{
			EaseFactor:     out.NewEase,
			Repetitions:    out.NewReps,
			IntervalDays:   out.NewInterval,
			NextReviewAt:   out.NextReviewAt,
			LastReviewedAt: now,
		})
		if err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review recorded",
		slog.String("user_id", userID.String()),
		slog.String("question_id", input.QuestionID.String()),
		slog.Int("quality", input.Quality),
		slog.Int("repetitions", updated.Repetitions),
		slog.Int("interval_days", updated.IntervalDays),
		slog.Float64("ease_factor", updated.EaseFactor),
	)

	return &updated, nil
}
