package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
	"github.com/aditya-zanzad/quizapp-backend/internal/service/review"
	"github.com/aditya-zanzad/quizapp-backend/pkg/ctxutil"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	GetDueReviews(ctx context.Context) ([]domain.DueReview, error)
	UpdateReview(ctx context.Context, input review.UpdateReviewInput) (*domain.ReviewSchedule, error)
}

// responseCache caches the encoded due-list response per user. Nil disables
// caching.
type responseCache interface {
	Get(userID uuid.UUID) ([]byte, bool)
	Set(userID uuid.UUID, body []byte)
	Invalidate(userID uuid.UUID)
}

// ReviewHandler serves spaced-repetition REST endpoints.
type ReviewHandler struct {
	svc   reviewService
	cache responseCache
	log   *slog.Logger
}

// NewReviewHandler creates a ReviewHandler. cache may be nil.
func NewReviewHandler(svc reviewService, cache responseCache, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, cache: cache, log: logger.With("handler", "review")}
}

type updateReviewRequest struct {
	QuizID     string `json:"quizId"`
	QuestionID string `json:"questionId"`
	Quality    int    `json:"quality"`
}

type scheduleResponse struct {
	ID             string     `json:"id"`
	QuizID         string     `json:"quizId"`
	QuestionID     string     `json:"questionId"`
	EaseFactor     float64    `json:"easeFactor"`
	Repetitions    int        `json:"repetitions"`
	IntervalDays   int        `json:"intervalDays"`
	NextReviewAt   time.Time  `json:"nextReviewAt"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
}

type dueReviewResponse struct {
	Schedule  scheduleResponse  `json:"schedule"`
	QuizTitle string            `json:"quizTitle"`
	Question  *questionResponse `json:"question"`
}

type dueListResponse struct {
	Reviews []dueReviewResponse `json:"reviews"`
	Total   int                 `json:"total"`
}

// GetDue handles GET /api/reviews. The encoded response is cached per user;
// a cache hit skips the service entirely.
func (h *ReviewHandler) GetDue(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if h.cache != nil {
		if body, hit := h.cache.Get(userID); hit {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			w.Write(body) //nolint:errcheck
			return
		}
	}

	due, err := h.svc.GetDueReviews(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := dueListResponse{
		Reviews: make([]dueReviewResponse, 0, len(due)),
		Total:   len(due),
	}
	for _, d := range due {
		entry := dueReviewResponse{
			Schedule:  toScheduleResponse(d.Schedule),
			QuizTitle: d.QuizTitle,
		}
		if d.Question != nil {
			q := toQuestionResponse(*d.Question)
			entry.Question = &q
		}
		resp.Reviews = append(resp.Reviews, entry)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(userID, body)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body) //nolint:errcheck
}

// Update handles POST /api/reviews/update. A successful update evicts the
// user's cached due list.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quiz id")
		return
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	updated, err := h.svc.UpdateReview(r.Context(), review.UpdateReviewInput{
		QuizID:     quizID,
		QuestionID: questionID,
		Quality:    req.Quality,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(userID)
	}

	writeJSON(w, http.StatusOK, toScheduleResponse(*updated))
}

func toScheduleResponse(s domain.ReviewSchedule) scheduleResponse {
	return scheduleResponse{
		ID:             s.ID.String(),
		QuizID:         s.QuizID.String(),
		QuestionID:     s.QuestionID.String(),
		EaseFactor:     s.EaseFactor,
		Repetitions:    s.Repetitions,
		IntervalDays:   s.IntervalDays,
		NextReviewAt:   s.NextReviewAt,
		LastReviewedAt: s.LastReviewedAt,
	}
}
