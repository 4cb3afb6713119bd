// Package quiz implements the quiz/question repository using PostgreSQL.
// Simple lookups use raw SQL; the dynamic listing filter is built with squirrel.
package quiz

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/aditya-zanzad/quizapp-backend/internal/adapter/postgres"
	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

const defaultListLimit = 50

// Repo provides quiz and question persistence backed by PostgreSQL.
type Repo struct {
	pool    *pgxpool.Pool
	builder sq.StatementBuilderType
}

// New creates a new quiz repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool:    pool,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const quizColumns = `id, title, category, created_by_id, created_by_name, created_at, updated_at`

const questionColumns = `id, quiz_id, position, text, options, correct_answer, difficulty, created_at`

const getQuizSQL = `
SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`

const getQuestionsSQL = `
SELECT ` + questionColumns + `
FROM questions
WHERE quiz_id = $1
ORDER BY position ASC`

const insertQuizSQL = `
INSERT INTO quizzes (` + quizColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const insertQuestionSQL = `
INSERT INTO questions (` + questionColumns + `)
SELECT $1, $2, COALESCE(MAX(position) + 1, 0), $3, $4, $5, $6, $7
FROM questions WHERE quiz_id = $2
RETURNING ` + questionColumns

const deleteQuestionSQL = `
DELETE FROM questions WHERE id = $1 AND quiz_id = $2`

const questionIDsSQL = `
SELECT id FROM questions WHERE quiz_id = $1 ORDER BY position ASC`

const questionsByIDsSQL = `
SELECT ` + questionColumns + `
FROM questions
WHERE id = ANY($1::uuid[])`

const quizTitlesSQL = `
SELECT id, title FROM quizzes WHERE id = ANY($1::uuid[])`

// ---------------------------------------------------------------------------
// Quiz operations
// ---------------------------------------------------------------------------

// Create inserts a new quiz (without questions).
func (r *Repo) Create(ctx context.Context, q domain.Quiz) (domain.Quiz, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertQuizSQL,
		q.ID, q.Title, q.Category, q.CreatedByID, q.CreatedByName, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return domain.Quiz{}, postgres.MapError(err, "quiz", q.ID)
	}

	return q, nil
}

// GetByID returns a quiz with its questions ordered by position.
// Returns domain.ErrNotFound if the quiz does not exist.
func (r *Repo) GetByID(ctx context.Context, quizID uuid.UUID) (domain.Quiz, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getQuizSQL, quizID)
	quiz, err := scanQuiz(row)
	if err != nil {
		return domain.Quiz{}, postgres.MapError(err, "quiz", quizID)
	}

	rows, err := querier.Query(ctx, getQuestionsSQL, quizID)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("get questions for quiz %s: %w", quizID, err)
	}
	defer rows.Close()

	quiz.Questions, err = scanQuestions(rows)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("get questions for quiz %s: %w", quizID, err)
	}

	return quiz, nil
}

// List returns quizzes matching the filter (without questions) plus the
// total match count for pagination.
func (r *Repo) List(ctx context.Context, filter domain.QuizFilter) ([]domain.Quiz, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := r.builder.
		Select("id", "title", "category", "created_by_id", "created_by_name", "created_at", "updated_at").
		From("quizzes").
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64(filter.Offset))

	countQuery := r.builder.Select("count(*)").From("quizzes")

	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": filter.Category})
		countQuery = countQuery.Where(sq.Eq{"category": filter.Category})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []domain.Quiz{}
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan quiz: %w", err)
		}
		quizzes = append(quizzes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate quizzes: %w", err)
	}

	countStr, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countStr, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count quizzes: %w", err)
	}

	return quizzes, total, nil
}

// ---------------------------------------------------------------------------
// Question operations
// ---------------------------------------------------------------------------

// AddQuestion appends a question to the quiz, assigning the next position.
// Returns domain.ErrNotFound if the quiz does not exist.
func (r *Repo) AddQuestion(ctx context.Context, q domain.Question) (domain.Question, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	row := querier.QueryRow(ctx, insertQuestionSQL,
		q.ID, q.QuizID, q.Text, q.Options, q.CorrectAnswer, string(q.Difficulty), q.CreatedAt)

	question, err := scanQuestion(row)
	if err != nil {
		return domain.Question{}, postgres.MapError(err, "question", q.ID)
	}

	return question, nil
}

// DeleteQuestion removes a question from a quiz. Schedules referencing the
// question are left in place; they surface as orphaned entries in the due
// list. Returns domain.ErrNotFound if no such question exists in the quiz.
func (r *Repo) DeleteQuestion(ctx context.Context, quizID, questionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteQuestionSQL, questionID, quizID)
	if err != nil {
		return postgres.MapError(err, "question", questionID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", questionID, domain.ErrNotFound)
	}

	return nil
}

// QuestionIDs returns the ordered question-id set of a quiz.
// Returns domain.ErrNotFound if the quiz itself does not exist; a quiz with
// no questions returns an empty slice.
func (r *Repo) QuestionIDs(ctx context.Context, quizID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM quizzes WHERE id = $1)`, quizID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check quiz %s: %w", quizID, err)
	}
	if !exists {
		return nil, fmt.Errorf("quiz %s: %w", quizID, domain.ErrNotFound)
	}

	rows, err := querier.Query(ctx, questionIDsSQL, quizID)
	if err != nil {
		return nil, fmt.Errorf("get question ids: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan question id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate question ids: %w", err)
	}

	return ids, nil
}

// QuestionsByIDs returns the questions found among ids, keyed by id.
// Missing ids are simply absent from the map; the caller decides what a
// hole means (for the due list it marks an orphaned schedule).
func (r *Repo) QuestionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Question, error) {
	result := make(map[uuid.UUID]domain.Question, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, questionsByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get questions by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		result[q.ID] = q
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return result, nil
}

// QuizTitles returns titles for the given quiz ids, keyed by id.
func (r *Repo) QuizTitles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	result := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, quizTitlesSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get quiz titles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("scan quiz title: %w", err)
		}
		result[id] = title
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz titles: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanQuiz(row pgx.Row) (domain.Quiz, error) {
	var q domain.Quiz
	err := row.Scan(&q.ID, &q.Title, &q.Category, &q.CreatedByID, &q.CreatedByName,
		&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return domain.Quiz{}, err
	}
	return q, nil
}

func scanQuestion(row pgx.Row) (domain.Question, error) {
	var q domain.Question
	var difficulty string
	err := row.Scan(&q.ID, &q.QuizID, &q.Position, &q.Text, &q.Options,
		&q.CorrectAnswer, &difficulty, &q.CreatedAt)
	if err != nil {
		return domain.Question{}, err
	}
	q.Difficulty = domain.Difficulty(difficulty)
	return q, nil
}

func scanQuestions(rows pgx.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if questions == nil {
		questions = []domain.Question{}
	}

	return questions, nil
}
