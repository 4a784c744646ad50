package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mediascribe/mediascribe/internal/api/handlers"
	"github.com/mediascribe/mediascribe/internal/api/middleware"
	"github.com/mediascribe/mediascribe/internal/config"
	"github.com/mediascribe/mediascribe/internal/media"
	"github.com/mediascribe/mediascribe/internal/stt"
)

type Router struct {
	mux      *chi.Mux
	cfg      *config.Config
	fetcher  media.Fetcher
	provider stt.Provider
}

func NewRouter(cfg *config.Config, fetcher media.Fetcher, provider stt.Provider) *Router {
	return &Router{
		mux:      chi.NewRouter(),
		cfg:      cfg,
		fetcher:  fetcher,
		provider: provider,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(10, 20)
	r.Use(rl.Limit)

	health := handlers.NewHealthHandler()
	r.Get("/", health.Root)
	r.Get("/health", health.Health)

	transcribe := handlers.NewTranscribeHandler(rt.fetcher, rt.provider, rt.cfg.STT.DefaultModel)
	r.Post("/transcribe", transcribe.Transcribe)

	return r
}
