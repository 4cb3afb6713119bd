package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with role "user". Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$test-hash-" + suffix,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role.String(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedQuiz creates a quiz with the given number of questions. Returns a
// filled domain.Quiz with Questions populated in position order.
func SeedQuiz(t *testing.T, pool *pgxpool.Pool, questionCount int) domain.Quiz {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	quiz := domain.Quiz{
		ID:            uuid.New(),
		Title:         "Test Quiz " + suffix,
		Category:      "testing",
		CreatedByName: "Admin",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO quizzes (id, title, category, created_by_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		quiz.ID, quiz.Title, quiz.Category, quiz.CreatedByName, quiz.CreatedAt, quiz.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuiz insert quiz: %v", err)
	}

	quiz.Questions = make([]domain.Question, questionCount)
	for i := 0; i < questionCount; i++ {
		quiz.Questions[i] = SeedQuestion(t, pool, quiz.ID, i)
	}

	return quiz
}

// SeedQuestion creates a single question at the given position.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, quizID uuid.UUID, position int) domain.Question {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	question := domain.Question{
		ID:            uuid.New(),
		QuizID:        quizID,
		Position:      position,
		Text:          "Question " + suffix + "?",
		Options:       []string{"A " + suffix, "B " + suffix, "C " + suffix, "D " + suffix},
		CorrectAnswer: "A " + suffix,
		Difficulty:    domain.DifficultyMedium,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO questions (id, quiz_id, position, text, options, correct_answer, difficulty, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		question.ID, question.QuizID, question.Position, question.Text, question.Options,
		question.CorrectAnswer, string(question.Difficulty), question.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert question: %v", err)
	}

	return question
}

// SeedSchedule creates a review schedule due at nextReviewAt for the given
// (user, quiz, question) triple, with fresh SM-2 defaults.
func SeedSchedule(t *testing.T, pool *pgxpool.Pool, userID, quizID, questionID uuid.UUID, nextReviewAt time.Time) domain.ReviewSchedule {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	schedule := domain.ReviewSchedule{
		ID:           uuid.New(),
		UserID:       userID,
		QuizID:       quizID,
		QuestionID:   questionID,
		EaseFactor:   domain.DefaultEaseFactor,
		Repetitions:  0,
		IntervalDays: 0,
		NextReviewAt: nextReviewAt.UTC().Truncate(time.Microsecond),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO review_schedules
		   (id, user_id, quiz_id, question_id, ease_factor, repetitions, interval_days, next_review_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		schedule.ID, schedule.UserID, schedule.QuizID, schedule.QuestionID,
		schedule.EaseFactor, schedule.Repetitions, schedule.IntervalDays,
		schedule.NextReviewAt, schedule.CreatedAt, schedule.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSchedule insert schedule: %v", err)
	}

	return schedule
}
