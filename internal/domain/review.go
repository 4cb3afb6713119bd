package domain

import (
	"time"

	"github.com/google/uuid"
)

// SM-2 defaults. EaseFloor is a hard lower bound: the ease factor is never
// allowed below it, no matter how many lapses a schedule accumulates.
const (
	DefaultEaseFactor = 2.5
	EaseFloor         = 1.3
)

// Quality thresholds on the 0-5 recall scale. A rating at or above
// QualitySuccess counts as successful recall; below it is a lapse.
const (
	QualitySuccess = 3
	QualityMax     = 5
)

// ReviewSchedule tracks when a single question should next be shown to a
// user. Exactly one schedule exists per (user, quiz, question) triple.
type ReviewSchedule struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	QuizID         uuid.UUID
	QuestionID     uuid.UUID
	EaseFactor     float64
	Repetitions    int
	IntervalDays   int
	NextReviewAt   time.Time
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewReviewSchedule returns a fresh schedule with SM-2 defaults, due
// immediately at now.
func NewReviewSchedule(userID, quizID, questionID uuid.UUID, now time.Time) ReviewSchedule {
	return ReviewSchedule{
		ID:           uuid.New(),
		UserID:       userID,
		QuizID:       quizID,
		QuestionID:   questionID,
		EaseFactor:   DefaultEaseFactor,
		Repetitions:  0,
		IntervalDays: 0,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsDue reports whether the schedule is eligible for review at now.
func (s *ReviewSchedule) IsDue(now time.Time) bool {
	return !s.NextReviewAt.After(now)
}

// ScheduleUpdateParams holds the mutable schedule fields recomputed by a
// review. They are persisted together; a partial write is never valid.
type ScheduleUpdateParams struct {
	EaseFactor     float64
	Repetitions    int
	IntervalDays   int
	NextReviewAt   time.Time
	LastReviewedAt time.Time
}

// DueReview pairs a due schedule with its resolved question content.
// Question is nil when the question has been deleted from the quiz since the
// schedule was created (an orphaned schedule); callers must handle that.
type DueReview struct {
	Schedule  ReviewSchedule
	QuizTitle string
	Question  *Question
}
