// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/govlens/govlens/internal/analyze"
)

const defaultMaxUploadBytes = 32 << 20

// Config holds the server's request-handling settings.
type Config struct {
	// APIKeyConfigured reports whether a completion-service credential is
	// present. Requests are rejected up front when it is not.
	APIKeyConfigured bool
	// TempDir is where uploaded documents are staged. Empty means the OS
	// default temp directory.
	TempDir string
	// MaxUploadBytes caps the in-memory portion of multipart parsing.
	MaxUploadBytes int64
}

// Server handles analysis requests.
type Server struct {
	svc analyze.Service
	cfg Config
}

// New creates a Server around the given analysis service.
func New(svc analyze.Service, cfg Config) *Server {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	return &Server{svc: svc, cfg: cfg}
}

// Router builds the HTTP routes. Method-aware routing means a wrong method on
// a known path answers 405 before any parsing or extraction happens.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	r.Get("/health", s.handleHealth)
	r.Post("/api/analyze", s.handleAnalyze)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze runs one request through the pipeline: parse inputs, extract,
// analyze, respond. Every failure is logged here and mapped to a status code;
// stages below only add context.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	log := zap.L().With(zap.String("request_id", uuid.NewString()))

	if !s.cfg.APIKeyConfigured {
		log.Error("analysis rejected: completion service credential missing")
		writeError(w, http.StatusInternalServerError, "OpenAI API key is not configured", nil)
		return
	}

	// Tolerate non-multipart bodies; missing inputs are caught below.
	_ = r.ParseMultipartForm(s.cfg.MaxUploadBytes)

	var filePath string
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		filePath, err = s.saveUpload(file, header)
		if err != nil {
			log.Error("failed to stage uploaded document", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal server error", err)
			return
		}
	}

	proposalURL := r.FormValue("proposalUrl")
	if filePath == "" && proposalURL == "" {
		writeError(w, http.StatusBadRequest, "No proposal content provided", nil)
		return
	}

	language := r.FormValue("language")
	if language == "" {
		language = "ja"
	}

	report, err := s.svc.Run(r.Context(), analyze.Request{
		URL:      proposalURL,
		FilePath: filePath,
		Policy:   r.FormValue("policy"),
		Language: language,
	})
	if err != nil {
		log.Error("analysis failed",
			zap.String("url", proposalURL),
			zap.Bool("document", filePath != ""),
			zap.Error(err),
		)
		switch {
		case eris.Is(err, analyze.ErrServiceUnavailable),
			eris.Is(err, analyze.ErrEmptyResponse),
			eris.Is(err, analyze.ErrMalformedResponse):
			writeError(w, http.StatusInternalServerError, "Error calling OpenAI API", err)
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	// The staged document is removed only after a fully successful run; an
	// earlier failure leaves it for external cleanup.
	if filePath != "" {
		if err := os.Remove(filePath); err != nil {
			log.Warn("failed to remove uploaded document",
				zap.String("path", filePath),
				zap.Error(err),
			)
		}
	}

	log.Info("analysis request complete",
		zap.String("platform", report.Platform),
		zap.String("title", report.ProposalTitle),
	)
	writeJSON(w, http.StatusOK, report)
}

// saveUpload stages the uploaded document in a temp file and returns its path.
func (s *Server) saveUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	tmp, err := os.CreateTemp(s.cfg.TempDir, "govlens-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", eris.Wrap(err, "server: create temp file")
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = os.Remove(tmp.Name())
		return "", eris.Wrap(err, "server: write temp file")
	}

	return tmp.Name(), nil
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := errorResponse{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
