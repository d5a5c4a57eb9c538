package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/scamshield/scamshield/internal/domain"
	"github.com/scamshield/scamshield/internal/domain/game"
	"github.com/scamshield/scamshield/internal/domain/image"
)

// maxImageForm bounds the multipart form size: the image ceiling plus
// headroom for the other form fields.
const maxImageForm = image.MaxFileSize + 1<<20

type phoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type messageRequest struct {
	Message string `json:"message"`
}

type urlRequest struct {
	URL string `json:"url"`
}

type answerRequest struct {
	ID     int  `json:"id"`
	IsScam bool `json:"is_scam"`
}

type newsResponse struct {
	Articles []domain.NewsArticle `json:"articles"`
	Live     bool                 `json:"live"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAssessPhone(w http.ResponseWriter, r *http.Request) {
	var req phoneRequest
	if !s.decode(w, r, &req) {
		return
	}

	a, err := s.service.AssessPhone(r.Context(), req.PhoneNumber)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, a)
}

func (s *Server) handleAssessMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if !s.decode(w, r, &req) {
		return
	}

	a, err := s.service.AssessMessage(r.Context(), req.Message)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, a)
}

func (s *Server) handleAssessURL(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if !s.decode(w, r, &req) {
		return
	}

	a, err := s.service.AssessURL(r.Context(), req.URL)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, a)
}

func (s *Server) handleAssessImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageForm); err != nil {
		s.respond(w, r, http.StatusBadRequest, errorResponse{Error: "expected multipart form with an image file"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.respond(w, r, http.StatusBadRequest, errorResponse{Error: "missing image file"})
		return
	}
	defer file.Close()

	meta := image.FileMeta{
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
	}
	if err := image.ValidateFile(meta); err != nil {
		s.respondError(w, r, err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, image.MaxFileSize))
	if err != nil {
		s.respond(w, r, http.StatusInternalServerError, errorResponse{Error: "failed to read upload"})
		return
	}

	a, err := s.service.AssessImage(r.Context(), meta, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, a)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	articles, live := s.service.News(r.Context())
	s.respond(w, r, http.StatusOK, newsResponse{Articles: articles, Live: live})
}

// handleStats serves the aggregate figures shown on the landing page.
// Static for now; nothing is persisted per assessment.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, map[string]any{
		"scams_detected":   12850,
		"users_protected":  45200,
		"accuracy_percent": 94,
		"analyzers":        4,
	})
}

func (s *Server) handleGameRound(w http.ResponseWriter, r *http.Request) {
	round := s.game.Round()
	s.respond(w, r, http.StatusOK, map[string]any{
		"samples": round,
		"total":   len(round),
	})
}

func (s *Server) handleGameAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !s.decode(w, r, &req) {
		return
	}

	answer, err := s.game.Grade(req.ID, req.IsScam)
	if err != nil {
		s.respond(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.respond(w, r, http.StatusOK, answer)
}

func (s *Server) handleGameVerdict(w http.ResponseWriter, r *http.Request) {
	score, err1 := strconv.Atoi(r.URL.Query().Get("score"))
	total, err2 := strconv.Atoi(r.URL.Query().Get("total"))
	if err1 != nil || err2 != nil || total <= 0 || score < 0 || score > total {
		s.respond(w, r, http.StatusBadRequest, errorResponse{Error: "score and total query parameters are required, with 0 <= score <= total"})
		return
	}
	s.respond(w, r, http.StatusOK, map[string]string{"verdict": game.FinalVerdict(score, total)})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respond(w, r, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "encode response", "error", err)
	}
}

// respondError maps service errors: invalid input is the caller's
// fault, everything else is ours. Provider failures never get here;
// the service converts those into local-path results.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		s.respond(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	s.logger.ErrorContext(r.Context(), "assessment failed", "error", err)
	s.respond(w, r, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
