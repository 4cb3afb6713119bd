package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
	"github.com/aditya-zanzad/quizapp-backend/pkg/ctxutil"
)

// GetDueReviews returns every schedule of the current user whose next review
// time has passed, each paired with the resolved question content. Pure read.
//
// A schedule whose question has since been deleted from its quiz is still
// returned, with Question nil, so one stale record never hides the rest of
// the due list.
func (s *Service) GetDueReviews(ctx context.Context) ([]domain.DueReview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()

	schedules, err := s.schedules.GetDueByUser(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("get due schedules: %w", err)
	}

	if len(schedules) == 0 {
		return []domain.DueReview{}, nil
	}

	questionIDs := make([]uuid.UUID, 0, len(schedules))
	quizIDs := make([]uuid.UUID, 0, len(schedules))
	seenQuiz := make(map[uuid.UUID]bool)
	for _, sched := range schedules {
		questionIDs = append(questionIDs, sched.QuestionID)
		if !seenQuiz[sched.QuizID] {
			seenQuiz[sched.QuizID] = true
			quizIDs = append(quizIDs, sched.QuizID)
		}
	}

	questions, err := s.questions.QuestionsByIDs(ctx, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve questions: %w", err)
	}

	titles, err := s.questions.QuizTitles(ctx, quizIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve quiz titles: %w", err)
	}

	orphaned := 0
	due := make([]domain.DueReview, 0, len(schedules))
	for _, sched := range schedules {
		entry := domain.DueReview{
			Schedule:  sched,
			QuizTitle: titles[sched.QuizID],
		}
		if q, found := questions[sched.QuestionID]; found {
			qCopy := q
			entry.Question = &qCopy
		} else {
			orphaned++
		}
		due = append(due, entry)
	}

	if orphaned > 0 {
		s.log.WarnContext(ctx, "due list contains orphaned schedules",
			slog.String("user_id", userID.String()),
			slog.Int("orphaned", orphaned),
		)
	}

	return due, nil
}
