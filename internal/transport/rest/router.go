package rest

import (
	"net/http"

	"github.com/aditya-zanzad/quizapp-backend/internal/transport/middleware"
)

// RouterDeps holds the handlers wired into the router.
type RouterDeps struct {
	Health *HealthHandler
	Auth   *AuthHandler
	Quiz   *QuizHandler
	Review *ReviewHandler

	// AuthLimit rate-limits the register/login endpoints. Nil disables it.
	AuthLimit middleware.Middleware
}

// NewRouter registers all routes on a ServeMux.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	register := http.HandlerFunc(deps.Auth.Register)
	login := http.HandlerFunc(deps.Auth.Login)
	if deps.AuthLimit != nil {
		mux.Handle("POST /api/auth/register", deps.AuthLimit(register))
		mux.Handle("POST /api/auth/login", deps.AuthLimit(login))
	} else {
		mux.Handle("POST /api/auth/register", register)
		mux.Handle("POST /api/auth/login", login)
	}

	mux.HandleFunc("GET /api/reviews", deps.Review.GetDue)
	mux.HandleFunc("POST /api/reviews/update", deps.Review.Update)

	mux.HandleFunc("GET /api/quizzes", deps.Quiz.List)
	mux.HandleFunc("POST /api/quizzes", deps.Quiz.Create)
	mux.HandleFunc("GET /api/quizzes/{id}", deps.Quiz.Get)
	mux.HandleFunc("POST /api/quizzes/{id}/questions", deps.Quiz.AddQuestion)
	mux.HandleFunc("DELETE /api/quizzes/{id}/questions/{questionId}", deps.Quiz.DeleteQuestion)

	return mux
}
