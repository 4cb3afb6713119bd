// Package schedule implements the ReviewSchedule repository using PostgreSQL.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/aditya-zanzad/quizapp-backend/internal/adapter/postgres"
	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

// Repo provides review-schedule persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new schedule repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const scheduleColumns = `id, user_id, quiz_id, question_id, ease_factor, repetitions,
       interval_days, next_review_at, last_reviewed_at, created_at, updated_at`

const getDueSQL = `
SELECT ` + scheduleColumns + `
FROM review_schedules
WHERE user_id = $1 AND next_review_at <= $2
ORDER BY next_review_at ASC, id ASC`

const insertSQL = `
INSERT INTO review_schedules (` + scheduleColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const ensureSQL = `
INSERT INTO review_schedules (` + scheduleColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (user_id, quiz_id, question_id) DO NOTHING`

const getForUpdateSQL = `
SELECT ` + scheduleColumns + `
FROM review_schedules
WHERE user_id = $1 AND quiz_id = $2 AND question_id = $3
FOR UPDATE`

const updateSQL = `
UPDATE review_schedules
SET ease_factor = $2, repetitions = $3, interval_days = $4,
    next_review_at = $5, last_reviewed_at = $6, updated_at = $7
WHERE id = $1
RETURNING ` + scheduleColumns

// GetDueByUser returns all schedules for the user with next_review_at <= now,
// ordered by next_review_at then id so the due list is stable across calls.
func (r *Repo) GetDueByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.ReviewSchedule, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getDueSQL, userID, now)
	if err != nil {
		return nil, fmt.Errorf("get due schedules: %w", err)
	}
	defer rows.Close()

	schedules, err := scanSchedules(rows)
	if err != nil {
		return nil, fmt.Errorf("get due schedules: %w", err)
	}

	return schedules, nil
}

// Insert adds a new schedule row.
// A duplicate (user, quiz, question) triple results in domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, s domain.ReviewSchedule) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSQL,
		s.ID, s.UserID, s.QuizID, s.QuestionID, s.EaseFactor, s.Repetitions,
		s.IntervalDays, s.NextReviewAt, s.LastReviewedAt, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "schedule", s.ID)
	}

	return nil
}

// GetOrCreateForUpdate returns the schedule for the triple with its row
// locked, creating a default row (due at now) if none exists yet. Two
// concurrent callers both end up locking the same single row: the insert is
// ON CONFLICT DO NOTHING, so the race loser simply locks the winner's row.
//
// Must be called inside a transaction or the row lock is released immediately.
func (r *Repo) GetOrCreateForUpdate(ctx context.Context, userID, quizID, questionID uuid.UUID, now time.Time) (domain.ReviewSchedule, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	fresh := domain.NewReviewSchedule(userID, quizID, questionID, now)
	_, err := querier.Exec(ctx, ensureSQL,
		fresh.ID, fresh.UserID, fresh.QuizID, fresh.QuestionID, fresh.EaseFactor, fresh.Repetitions,
		fresh.IntervalDays, fresh.NextReviewAt, fresh.LastReviewedAt, fresh.CreatedAt, fresh.UpdatedAt)
	if err != nil {
		return domain.ReviewSchedule{}, postgres.MapError(err, "schedule", fresh.ID)
	}

	row := querier.QueryRow(ctx, getForUpdateSQL, userID, quizID, questionID)
	schedule, err := scanSchedule(row)
	if err != nil {
		return domain.ReviewSchedule{}, postgres.MapError(err, "schedule", fresh.ID)
	}

	return schedule, nil
}

// Update writes the recomputed SRS fields and returns the persisted row.
// All five mutable fields go in one statement; there is no partial update.
// Returns domain.ErrNotFound if the schedule does not exist.
func (r *Repo) Update(ctx context.Context, scheduleID uuid.UUID, params domain.ScheduleUpdateParams) (domain.ReviewSchedule, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateSQL,
		scheduleID, params.EaseFactor, params.Repetitions, params.IntervalDays,
		params.NextReviewAt, params.LastReviewedAt, time.Now().UTC())

	schedule, err := scanSchedule(row)
	if err != nil {
		return domain.ReviewSchedule{}, postgres.MapError(err, "schedule", scheduleID)
	}

	return schedule, nil
}

// CountScheduled returns how many of the given questions already have a
// schedule for the (user, quiz) pair. Schedules for questions outside the
// given set, such as leftovers of deleted questions, are not counted.
func (r *Repo) CountScheduled(ctx context.Context, userID, quizID uuid.UUID, questionIDs []uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := querier.QueryRow(ctx,
		`SELECT count(*) FROM review_schedules
		 WHERE user_id = $1 AND quiz_id = $2 AND question_id = ANY($3)`,
		userID, quizID, questionIDs).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count schedules: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSchedule(row pgx.Row) (domain.ReviewSchedule, error) {
	var s domain.ReviewSchedule
	err := row.Scan(&s.ID, &s.UserID, &s.QuizID, &s.QuestionID, &s.EaseFactor, &s.Repetitions,
		&s.IntervalDays, &s.NextReviewAt, &s.LastReviewedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.ReviewSchedule{}, err
	}
	return s, nil
}

func scanSchedules(rows pgx.Rows) ([]domain.ReviewSchedule, error) {
	var schedules []domain.ReviewSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if schedules == nil {
		schedules = []domain.ReviewSchedule{}
	}

	return schedules, nil
}
