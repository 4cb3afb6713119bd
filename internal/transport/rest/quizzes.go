package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
	"github.com/aditya-zanzad/quizapp-backend/internal/service/quiz"
)

// quizService defines the minimal interface needed by QuizHandler.
type quizService interface {
	CreateQuiz(ctx context.Context, input quiz.CreateQuizInput) (*domain.Quiz, error)
	GetQuiz(ctx context.Context, quizID uuid.UUID) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context, filter domain.QuizFilter) ([]domain.Quiz, int, error)
	AddQuestion(ctx context.Context, input quiz.AddQuestionInput) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, quizID, questionID uuid.UUID) error
}

// QuizHandler serves quiz and question REST endpoints.
type QuizHandler struct {
	svc quizService
	log *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, log: logger.With("handler", "quiz")}
}

type createQuizRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type addQuestionRequest struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
}

type quizResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Category      string             `json:"category,omitempty"`
	CreatedByName string             `json:"createdByName"`
	Questions     []questionResponse `json:"questions"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type questionResponse struct {
	ID            string   `json:"id"`
	Position      int      `json:"position"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
}

type quizListResponse struct {
	Quizzes []quizResponse `json:"quizzes"`
	Total   int            `json:"total"`
}

// Create handles POST /api/quizzes.
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateQuiz(r.Context(), quiz.CreateQuizInput{
		Title:    req.Title,
		Category: req.Category,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuizResponse(created))
}

// Get handles GET /api/quizzes/{id}.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	quizID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quiz id")
		return
	}

	found, err := h.svc.GetQuiz(r.Context(), quizID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuizResponse(found))
}

// List handles GET /api/quizzes?category=&limit=&offset=.
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.QuizFilter{
		Category: r.URL.Query().Get("category"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		filter.Offset, _ = strconv.Atoi(v)
	}

	quizzes, total, err := h.svc.ListQuizzes(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := quizListResponse{
		Quizzes: make([]quizResponse, 0, len(quizzes)),
		Total:   total,
	}
	for i := range quizzes {
		resp.Quizzes = append(resp.Quizzes, toQuizResponse(&quizzes[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddQuestion handles POST /api/quizzes/{id}/questions.
func (h *QuizHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quiz id")
		return
	}

	var req addQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.svc.AddQuestion(r.Context(), quiz.AddQuestionInput{
		QuizID:        quizID,
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Difficulty:    domain.Difficulty(req.Difficulty),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuestionResponse(*question))
}

// DeleteQuestion handles DELETE /api/quizzes/{id}/questions/{questionId}.
func (h *QuizHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quiz id")
		return
	}
	questionID, err := uuid.Parse(r.PathValue("questionId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), quizID, questionID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func toQuizResponse(q *domain.Quiz) quizResponse {
	questions := make([]questionResponse, 0, len(q.Questions))
	for _, question := range q.Questions {
		questions = append(questions, toQuestionResponse(question))
	}
	return quizResponse{
		ID:            q.ID.String(),
		Title:         q.Title,
		Category:      q.Category,
		CreatedByName: q.CreatedByName,
		Questions:     questions,
		CreatedAt:     q.CreatedAt,
	}
}

func toQuestionResponse(q domain.Question) questionResponse {
	return questionResponse{
		ID:            q.ID.String(),
		Position:      q.Position,
		Text:          q.Text,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    string(q.Difficulty),
	}
}
