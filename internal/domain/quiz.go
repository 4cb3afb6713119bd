package domain

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty classifies a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether the difficulty is one of the known values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Quiz is an ordered collection of questions.
type Quiz struct {
	ID            uuid.UUID
	Title         string
	Category      string
	CreatedByID   *uuid.UUID
	CreatedByName string
	Questions     []Question
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// QuizFilter narrows a quiz listing. Zero values mean "no constraint";
// Limit 0 falls back to the repository default.
type QuizFilter struct {
	Category string
	Limit    int
	Offset   int
}

// Question belongs to exactly one quiz. Position is the question's index
// within the quiz; it is compacted after deletions.
type Question struct {
	ID            uuid.UUID
	QuizID        uuid.UUID
	Position      int
	Text          string
	Options       []string
	CorrectAnswer string
	Difficulty    Difficulty
	CreatedAt     time.Time
}
