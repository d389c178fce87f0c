// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/harf/internal/adapters/repository"
	service "github.com/okian/harf/internal/app"
	"github.com/okian/harf/internal/domain/types"
)

// ProgressDependencies defines the interface for letter attempt recording.
type ProgressDependencies interface {
	RecordLetterAttempt(ctx context.Context, studentName, letter string, score int) (types.AttemptResult, error)
}

// ProgressHandler handles letter attempt submissions.
type ProgressHandler struct {
	deps ProgressDependencies
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(deps ProgressDependencies) *ProgressHandler {
	return &ProgressHandler{deps: deps}
}

// progressRequest mirrors the OpenAPI schema for POST /api/save-progress.
type progressRequest struct {
	Student string `json:"student"`
	Letter  string `json:"letter"`
	Score   *int   `json:"score"`
}

type progressResponse struct {
	Status  string `json:"status"`
	Passed  bool   `json:"passed"`
	Score   int    `json:"score"`
	Created bool   `json:"created"`
}

// HandleSaveProgress handles POST /api/save-progress requests.
func (h *ProgressHandler) HandleSaveProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err)
		return
	}
	if req.Score == nil {
		writeError(w, http.StatusBadRequest, "bad_request",
			errors.New("missing required fields: student, letter, score"))
		return
	}

	result, err := h.deps.RecordLetterAttempt(r.Context(), req.Student, req.Letter, *req.Score)
	if err != nil {
		var prereq *repository.PrerequisiteError
		switch {
		case errors.As(err, &prereq):
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:          "previous_letter_not_passed",
				Message:        fmt.Sprintf("Please complete letter %s first", prereq.RequiredLetter),
				RequiredLetter: prereq.RequiredLetter,
			})
		case errors.Is(err, service.ErrInvalidArgument):
			writeError(w, http.StatusBadRequest, "bad_request", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", ErrInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, progressResponse{
		Status:  "ok",
		Passed:  result.Passed,
		Score:   result.Score,
		Created: result.Created,
	})
}
