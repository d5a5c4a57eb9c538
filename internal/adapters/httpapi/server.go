// Package httpapi exposes the analyzers, the news feed and the
// training game over a JSON HTTP API.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/scamshield/scamshield/internal/application"
	"github.com/scamshield/scamshield/internal/domain/game"
)

// requestTimeout bounds every request, including provider calls made
// on its behalf.
const requestTimeout = 30 * time.Second

// Server wires the HTTP handlers to the application service.
type Server struct {
	logger  *slog.Logger
	service *application.AssessmentService
	game    *game.Game
}

// NewServer creates the API server.
func NewServer(logger *slog.Logger, service *application.AssessmentService, g *game.Game) *Server {
	return &Server{logger: logger, service: service, game: g}
}

// Router builds the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/assess", func(r chi.Router) {
			r.Post("/phone", s.handleAssessPhone)
			r.Post("/message", s.handleAssessMessage)
			r.Post("/url", s.handleAssessURL)
			r.Post("/image", s.handleAssessImage)
		})

		r.Get("/news", s.handleNews)
		r.Get("/stats", s.handleStats)

		r.Route("/game", func(r chi.Router) {
			r.Get("/round", s.handleGameRound)
			r.Post("/answer", s.handleGameAnswer)
			r.Get("/verdict", s.handleGameVerdict)
		})
	})

	return r
}

// requestLogger logs one line per request through the structured logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
