// Package app wires configuration, storage, services and transport together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aditya-zanzad/quizapp-backend/internal/adapter/postgres"
	quizrepo "github.com/aditya-zanzad/quizapp-backend/internal/adapter/postgres/quiz"
	schedulerepo "github.com/aditya-zanzad/quizapp-backend/internal/adapter/postgres/schedule"
	userrepo "github.com/aditya-zanzad/quizapp-backend/internal/adapter/postgres/user"
	"github.com/aditya-zanzad/quizapp-backend/internal/auth"
	"github.com/aditya-zanzad/quizapp-backend/internal/cache"
	"github.com/aditya-zanzad/quizapp-backend/internal/config"
	authsvc "github.com/aditya-zanzad/quizapp-backend/internal/service/auth"
	quizsvc "github.com/aditya-zanzad/quizapp-backend/internal/service/quiz"
	reviewsvc "github.com/aditya-zanzad/quizapp-backend/internal/service/review"
	"github.com/aditya-zanzad/quizapp-backend/internal/transport/middleware"
	"github.com/aditya-zanzad/quizapp-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	quizzes := quizrepo.New(pool)
	users := userrepo.New(pool)
	schedules := schedulerepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, authsvc.Config{
		PasswordHashCost: cfg.Auth.PasswordHashCost,
	})
	reviewService := reviewsvc.NewService(logger, schedules, quizzes, txManager, reviewsvc.SM2Config{
		MinEase:        cfg.SRS.MinEaseFactor,
		FirstInterval:  cfg.SRS.FirstInterval,
		SecondInterval: cfg.SRS.SecondInterval,
	})
	quizService := quizsvc.NewService(logger, quizzes, users, reviewService)

	// Transport.
	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	reviewHandler := rest.NewReviewHandler(reviewService, nil, logger)
	if cfg.Cache.Enabled {
		reviewHandler = rest.NewReviewHandler(reviewService,
			cache.New(cfg.Cache.Size, cfg.Cache.TTL), logger)
	}

	mux := rest.NewRouter(rest.RouterDeps{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(authService, logger),
		Quiz:      rest.NewQuizHandler(quizService, logger),
		Review:    reviewHandler,
		AuthLimit: rateLimiter.Limit(cfg.Server.AuthRateLimit),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
