// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/harf/internal/app"
	"github.com/okian/harf/internal/domain/model"
	"github.com/okian/harf/internal/domain/types"
)

// ActivityDependencies defines the interface for CVC activity recording.
type ActivityDependencies interface {
	RecordActivity(ctx context.Context, studentName string, kind model.ActivityKind, points int, readingTime *float64) (types.ActivitySnapshot, error)
}

// ActivityHandler handles CVC activity submissions.
type ActivityHandler struct {
	deps ActivityDependencies
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(deps ActivityDependencies) *ActivityHandler {
	return &ActivityHandler{deps: deps}
}

// activityRequest mirrors the OpenAPI schema for POST /api/save-cvc-progress.
type activityRequest struct {
	Student     string   `json:"student"`
	Type        string   `json:"type"`
	Points      int      `json:"points"`
	ReadingTime *float64 `json:"reading_time"`
}

type activityResponse struct {
	Status             string `json:"status"`
	TotalScore         int    `json:"total_score"`
	WordsCompleted     int    `json:"words_completed"`
	SentencesCompleted int    `json:"sentences_completed"`
	StoriesCompleted   int    `json:"stories_completed"`
	Created            bool   `json:"created"`
}

// HandleSaveActivity handles POST /api/save-cvc-progress requests.
func (h *ActivityHandler) HandleSaveActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err)
		return
	}

	snapshot, err := h.deps.RecordActivity(r.Context(), req.Student, model.ActivityKind(req.Type), req.Points, req.ReadingTime)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", ErrInternal)
		return
	}

	writeJSON(w, http.StatusOK, activityResponse{
		Status:             "ok",
		TotalScore:         snapshot.TotalScore,
		WordsCompleted:     snapshot.WordsCompleted,
		SentencesCompleted: snapshot.SentencesCompleted,
		StoriesCompleted:   snapshot.StoriesCompleted,
		Created:            snapshot.Created,
	})
}
