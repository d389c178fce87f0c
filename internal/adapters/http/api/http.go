// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/harf/internal/domain/model"
	"github.com/okian/harf/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Write operations record practice results.
	RecordLetterAttempt(ctx context.Context, studentName, letter string, score int) (types.AttemptResult, error)
	RecordActivity(ctx context.Context, studentName string, kind model.ActivityKind, points int, readingTime *float64) (types.ActivitySnapshot, error)

	// Read operations expose catalogs and progress views.
	Leaderboard(ctx context.Context, limit int) ([]types.LeaderboardRow, error)
	Words(ctx context.Context) ([]model.CVCWord, error)
	Sentences(ctx context.Context) ([]model.CVCSentence, error)
	Stories(ctx context.Context) ([]model.CVCStory, error)
	Certificate(ctx context.Context, studentName string) (types.CertificateStatus, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	progressHandler    *ProgressHandler
	activityHandler    *ActivityHandler
	catalogHandler     *CatalogHandler
	leaderboardHandler *LeaderboardHandler
	certificateHandler *CertificateHandler
	speechHandler      *SpeechHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		progressHandler:    NewProgressHandler(deps),
		activityHandler:    NewActivityHandler(deps),
		catalogHandler:     NewCatalogHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps),
		certificateHandler: NewCertificateHandler(deps),
		speechHandler:      NewSpeechHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, MetricsMiddleware(RequestIDMiddleware(h), endpoint))
	}

	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	route("/leaderboard", "leaderboard", s.leaderboardHandler.HandleGetLeaderboard)
	route("/api/save-progress", "save_progress", s.progressHandler.HandleSaveProgress)
	route("/api/save-cvc-progress", "save_cvc_progress", s.activityHandler.HandleSaveActivity)
	route("/api/cvc-words", "cvc_words", s.catalogHandler.HandleGetWords)
	route("/api/cvc-sentences", "cvc_sentences", s.catalogHandler.HandleGetSentences)
	route("/api/cvc-stories", "cvc_stories", s.catalogHandler.HandleGetStories)
	route("/api/certificate/", "certificate", s.certificateHandler.HandleGetCertificate)
	route("/api/speech-check", "speech_check", s.speechHandler.HandleSpeechCheck)
	route("/api/check-pronunciation", "check_pronunciation", s.speechHandler.HandleCheckPronunciation)
}

type errorResponse struct {
	Error          string `json:"error"`
	Message        string `json:"message,omitempty"`
	RequiredLetter string `json:"required_letter,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}
