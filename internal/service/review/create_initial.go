package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
	"github.com/aditya-zanzad/quizapp-backend/pkg/ctxutil"
)

// CreateInitialSchedules inserts a default schedule for every question of the
// quiz, due immediately, for the current user. A missing quiz surfaces as
// domain.ErrNotFound.
//
// The operation is idempotent: rows that already exist are skipped, so it is
// safe to call on every quiz view. Any failure other than "already exists"
// aborts the batch and propagates.
func (s *Service) CreateInitialSchedules(ctx context.Context, quizID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	questionIDs, err := s.questions.QuestionIDs(ctx, quizID)
	if err != nil {
		return fmt.Errorf("get question ids for quiz %s: %w", quizID, err)
	}
	if len(questionIDs) == 0 {
		return nil
	}

	// Steady state on repeat views: every current question already has a
	// schedule, skip the insert loop entirely. The count is scoped to the
	// current question set so leftover schedules of deleted questions never
	// mask a newly added question.
	existing, err := s.schedules.CountScheduled(ctx, userID, quizID, questionIDs)
	if err != nil {
		return fmt.Errorf("count schedules for quiz %s: %w", quizID, err)
	}
	if existing >= len(questionIDs) {
		return nil
	}

	now := time.Now().UTC()
	created := 0
	for _, questionID := range questionIDs {
		err := s.schedules.Insert(ctx, domain.NewReviewSchedule(userID, quizID, questionID, now))
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Partial state: some questions were scheduled before others
			// were added to the quiz.
			continue
		}
		if err != nil {
			return fmt.Errorf("insert schedule for question %s: %w", questionID, err)
		}
		created++
	}

	if created > 0 {
		s.log.InfoContext(ctx, "initial review schedules created",
			slog.String("user_id", userID.String()),
			slog.String("quiz_id", quizID.String()),
			slog.Int("created", created),
			slog.Int("total", len(questionIDs)),
		)
	}

	return nil
}
