package quiz_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya-zanzad/quizapp-backend/internal/adapter/postgres/quiz"
	"github.com/aditya-zanzad/quizapp-backend/internal/adapter/postgres/testhelper"
	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*quiz.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return quiz.New(pool), pool
}

func assertIsDomainError(t *testing.T, err error, want error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %v, got nil", want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected error %v, got %v", want, err)
	}
}

// ---------------------------------------------------------------------------
// Create + GetByID
// ---------------------------------------------------------------------------

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	created, err := repo.Create(ctx, domain.Quiz{
		ID:            uuid.New(),
		Title:         "Go Concurrency",
		Category:      "programming",
		CreatedByName: "Admin",
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Title != "Go Concurrency" {
		t.Errorf("Title mismatch: got %q", got.Title)
	}
	if got.Category != "programming" {
		t.Errorf("Category mismatch: got %q", got.Category)
	}
	if got.Questions == nil {
		t.Error("Questions: expected empty slice, got nil")
	}
	if len(got.Questions) != 0 {
		t.Errorf("Questions: expected none, got %d", len(got.Questions))
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_GetByID_QuestionsInPositionOrder(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedQuiz(t, pool, 3)

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if len(got.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(got.Questions))
	}
	for i, q := range got.Questions {
		if q.Position != i {
			t.Errorf("question[%d] position mismatch: got %d", i, q.Position)
		}
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestRepo_List_CategoryFilter(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	// A category unique to this test keeps parallel tests out of the result.
	category := "cat-" + uuid.New().String()[:8]
	now := time.Now().UTC()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, domain.Quiz{
			ID:            uuid.New(),
			Title:         "Filtered Quiz",
			Category:      category,
			CreatedByName: "Admin",
			CreatedAt:     now.Add(time.Duration(i) * time.Second),
			UpdatedAt:     now,
		})
		if err != nil {
			t.Fatalf("Create[%d]: unexpected error: %v", i, err)
		}
	}

	quizzes, total, err := repo.List(ctx, domain.QuizFilter{Category: category})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if total != 3 {
		t.Errorf("total mismatch: got %d, want 3", total)
	}
	if len(quizzes) != 3 {
		t.Fatalf("expected 3 quizzes, got %d", len(quizzes))
	}
	// Newest first.
	for i := 1; i < len(quizzes); i++ {
		if quizzes[i].CreatedAt.After(quizzes[i-1].CreatedAt) {
			t.Errorf("quizzes not ordered newest-first at index %d", i)
		}
	}
}

func TestRepo_List_Pagination(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	category := "page-" + uuid.New().String()[:8]
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, domain.Quiz{
			ID:            uuid.New(),
			Title:         "Paged Quiz",
			Category:      category,
			CreatedByName: "Admin",
			CreatedAt:     now.Add(time.Duration(i) * time.Second),
			UpdatedAt:     now,
		})
		if err != nil {
			t.Fatalf("Create[%d]: unexpected error: %v", i, err)
		}
	}

	page, total, err := repo.List(ctx, domain.QuizFilter{Category: category, Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if total != 5 {
		t.Errorf("total mismatch: got %d, want 5", total)
	}
	if len(page) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page))
	}
}

// ---------------------------------------------------------------------------
// AddQuestion
// ---------------------------------------------------------------------------

func TestRepo_AddQuestion_AssignsNextPosition(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedQuiz(t, pool, 2)

	added, err := repo.AddQuestion(ctx, domain.Question{
		ID:            uuid.New(),
		QuizID:        seeded.ID,
		Text:          "What does iota do?",
		Options:       []string{"counts", "loops", "panics"},
		CorrectAnswer: "counts",
		Difficulty:    domain.DifficultyHard,
	})
	if err != nil {
		t.Fatalf("AddQuestion: unexpected error: %v", err)
	}

	if added.Position != 2 {
		t.Errorf("Position mismatch: got %d, want 2", added.Position)
	}
	if added.Difficulty != domain.DifficultyHard {
		t.Errorf("Difficulty mismatch: got %s", added.Difficulty)
	}
	if len(added.Options) != 3 {
		t.Errorf("Options mismatch: got %v", added.Options)
	}
}

func TestRepo_AddQuestion_FirstQuestionAtZero(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedQuiz(t, pool, 0)

	added, err := repo.AddQuestion(ctx, domain.Question{
		ID:            uuid.New(),
		QuizID:        seeded.ID,
		Text:          "First?",
		Options:       []string{"yes", "no"},
		CorrectAnswer: "yes",
		Difficulty:    domain.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("AddQuestion: unexpected error: %v", err)
	}
	if added.Position != 0 {
		t.Errorf("Position mismatch: got %d, want 0", added.Position)
	}
}

func TestRepo_AddQuestion_QuizNotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.AddQuestion(context.Background(), domain.Question{
		ID:            uuid.New(),
		QuizID:        uuid.New(),
		Text:          "Orphan?",
		Options:       []string{"a"},
		CorrectAnswer: "a",
		Difficulty:    domain.DifficultyEasy,
	})
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// DeleteQuestion
// ---------------------------------------------------------------------------

func TestRepo_DeleteQuestion(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedQuiz(t, pool, 2)
	target := seeded.Questions[0]

	if err := repo.DeleteQuestion(ctx, seeded.ID, target.ID); err != nil {
		t.Fatalf("DeleteQuestion: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("expected 1 remaining question, got %d", len(got.Questions))
	}
	if got.Questions[0].ID == target.ID {
		t.Error("deleted question still present")
	}

	// Second delete of the same question reports not found.
	err = repo.DeleteQuestion(ctx, seeded.ID, target.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_DeleteQuestion_WrongQuiz(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	a := testhelper.SeedQuiz(t, pool, 1)
	b := testhelper.SeedQuiz(t, pool, 1)

	// Deleting a's question through b's id must not touch it.
	err := repo.DeleteQuestion(ctx, b.ID, a.Questions[0].ID)
	assertIsDomainError(t, err, domain.ErrNotFound)

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("question was deleted through the wrong quiz")
	}
}

// ---------------------------------------------------------------------------
// QuestionIDs / QuestionsByIDs / QuizTitles
// ---------------------------------------------------------------------------

func TestRepo_QuestionIDs(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedQuiz(t, pool, 3)

	ids, err := repo.QuestionIDs(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("QuestionIDs: unexpected error: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(ids))
	}
	for i, q := range seeded.Questions {
		if ids[i] != q.ID {
			t.Errorf("ids[%d] mismatch: got %s, want %s", i, ids[i], q.ID)
		}
	}
}

func TestRepo_QuestionIDs_EmptyQuiz(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedQuiz(t, pool, 0)

	ids, err := repo.QuestionIDs(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("QuestionIDs: unexpected error: %v", err)
	}
	if ids == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(ids) != 0 {
		t.Fatalf("expected 0 ids, got %d", len(ids))
	}
}

func TestRepo_QuestionIDs_QuizNotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.QuestionIDs(context.Background(), uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_QuestionsByIDs_MissingIDsAbsent(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedQuiz(t, pool, 2)
	missing := uuid.New()

	got, err := repo.QuestionsByIDs(ctx, []uuid.UUID{seeded.Questions[0].ID, missing, seeded.Questions[1].ID})
	if err != nil {
		t.Fatalf("QuestionsByIDs: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	if _, found := got[missing]; found {
		t.Error("missing id must be absent from the map")
	}
	if got[seeded.Questions[0].ID].Text != seeded.Questions[0].Text {
		t.Errorf("question text mismatch")
	}
}

func TestRepo_QuestionsByIDs_EmptyInput(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	got, err := repo.QuestionsByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("QuestionsByIDs: unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(got))
	}
}

func TestRepo_QuizTitles(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	a := testhelper.SeedQuiz(t, pool, 0)
	b := testhelper.SeedQuiz(t, pool, 0)

	got, err := repo.QuizTitles(ctx, []uuid.UUID{a.ID, b.ID, uuid.New()})
	if err != nil {
		t.Fatalf("QuizTitles: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 titles, got %d", len(got))
	}
	if got[a.ID] != a.Title {
		t.Errorf("title mismatch for %s: got %q", a.ID, got[a.ID])
	}
}
