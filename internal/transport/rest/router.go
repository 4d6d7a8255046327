package rest

import (
	"net/http"

	"github.com/heartmarshall/neologe-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter needs to mount the API.
type RouterDeps struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Neologism *NeologismHandler
}

// NewRouter mounts all REST routes. Submission routes sit behind
// RequireAuth; auth and health routes stay open.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	mux.Handle("POST /api/neologisms", protected(deps.Neologism.Submit))
	mux.Handle("GET /api/neologisms", protected(deps.Neologism.List))
	mux.Handle("GET /api/neologisms/{id}", protected(deps.Neologism.Get))
	mux.Handle("POST /api/neologisms/{id}/resolve", protected(deps.Neologism.Resolve))

	return mux
}
