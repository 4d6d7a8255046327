package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	jwtauth "github.com/heartmarshall/neologe-backend/internal/auth"
	"github.com/heartmarshall/neologe-backend/internal/config"
	"github.com/heartmarshall/neologe-backend/internal/llm"

	"github.com/heartmarshall/neologe-backend/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/neologe-backend/internal/adapter/llm/arbiter"
	"github.com/heartmarshall/neologe-backend/internal/adapter/llm/gemini"
	"github.com/heartmarshall/neologe-backend/internal/adapter/llm/openai"
	"github.com/heartmarshall/neologe-backend/internal/adapter/postgres"
	evaluationrepo "github.com/heartmarshall/neologe-backend/internal/adapter/postgres/evaluation"
	responserepo "github.com/heartmarshall/neologe-backend/internal/adapter/postgres/response"
	submissionrepo "github.com/heartmarshall/neologe-backend/internal/adapter/postgres/submission"
	userrepo "github.com/heartmarshall/neologe-backend/internal/adapter/postgres/user"

	authsvc "github.com/heartmarshall/neologe-backend/internal/service/auth"
	"github.com/heartmarshall/neologe-backend/internal/service/neologism"

	"github.com/heartmarshall/neologe-backend/internal/transport/middleware"
	"github.com/heartmarshall/neologe-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// database, LLM adapters, services and HTTP transport, then serves until
// ctx is cancelled. On shutdown it drains in-flight background evaluations
// before closing the pool.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Any("llm_providers", cfg.LLM.ConfiguredProviders()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: connect to database: %w", err)
	}
	defer pool.Close()

	submissions := submissionrepo.New(pool)
	responses := responserepo.New(pool)
	evaluations := evaluationrepo.New(pool)
	users := userrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	evaluators := buildEvaluators(cfg.LLM, logger)
	judge := arbiter.New(cfg.LLM.Arbiter.APIKey, cfg.LLM.Arbiter.Model, cfg.LLM.Arbiter.BaseURL, logger)

	authService := authsvc.NewService(logger, users, jwtManager)
	neologismService := neologism.NewService(logger, submissions, responses, evaluations, txManager, evaluators, judge, cfg.LLM)

	router := rest.NewRouter(rest.RouterDeps{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(authService, logger),
		Neologism: rest.NewNeologismHandler(neologismService, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtManager),
	)(router)

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
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}

	// Pending evaluations keep their detached context; give them a chance
	// to land before the pool closes underneath them.
	neologismService.Wait()

	logger.Info("shutdown complete")
	return nil
}

// buildEvaluators instantiates one adapter per configured provider,
// preserving the fixed fan-out order.
func buildEvaluators(cfg config.LLMConfig, logger *slog.Logger) []llm.Evaluator {
	var evaluators []llm.Evaluator
	for _, name := range cfg.ConfiguredProviders() {
		switch name {
		case "openai":
			evaluators = append(evaluators, openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, logger))
		case "anthropic":
			evaluators = append(evaluators, anthropic.New(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.BaseURL, logger))
		case "gemini":
			evaluators = append(evaluators, gemini.New(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL, logger))
		}
	}
	return evaluators
}
