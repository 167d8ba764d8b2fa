// Package server exposes the catalog as a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/format"
	"tableflip.dev/pokedex/pkg/pager"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/printers"
	"tableflip.dev/pokedex/pkg/trainer"
)

// DefaultAllowedOrigins are the CORS origins accepted when none are set.
var DefaultAllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

// Server holds the HTTP server dependencies.
type Server struct {
	dex     *dex.Service
	log     *zap.Logger
	origins []string
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAllowedOrigins replaces the CORS origin allow list.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// New creates a new API server.
func New(svc *dex.Service, opts ...Option) *Server {
	s := &Server{
		dex:     svc,
		log:     zap.NewNop(),
		origins: DefaultAllowedOrigins,
		router:  chi.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/pokemon", s.handleListPokemon)
		r.Get("/pokemon/{idOrName}", s.handleGetPokemon)
		r.Get("/pokemon/{idOrName}/moves", s.handleGetMoves)
		r.Get("/types", s.handleGetTypes)
	})

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDexError maps catalog errors to HTTP statuses.
func (s *Server) respondDexError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, category.ErrUnknown):
		respondError(w, http.StatusNotFound, "Type not found")
	case errors.Is(err, pokeapi.ErrNotFound):
		respondError(w, http.StatusNotFound, "Pokémon not found")
	case errors.Is(err, trainer.ErrInvalidInput),
		errors.Is(err, format.ErrInvalidArgument),
		errors.Is(err, pager.ErrOutOfRange):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, pokeapi.ErrFetchFailed), errors.Is(err, category.ErrResolutionFailed):
		s.log.Warn("upstream failure", zap.Error(err))
		respondError(w, http.StatusBadGateway, printers.FetchFailedMessage)
	default:
		s.log.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
