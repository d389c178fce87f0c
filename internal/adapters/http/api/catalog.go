// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/harf/internal/domain/model"
)

// CatalogDependencies defines the interface for catalog reads.
type CatalogDependencies interface {
	Words(ctx context.Context) ([]model.CVCWord, error)
	Sentences(ctx context.Context) ([]model.CVCSentence, error)
	Stories(ctx context.Context) ([]model.CVCStory, error)
}

// CatalogHandler serves the practice content catalogs.
type CatalogHandler struct {
	deps CatalogDependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps CatalogDependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

type wordsResponse struct {
	Words []model.CVCWord `json:"words"`
	Count int             `json:"count"`
}

type sentencesResponse struct {
	Sentences []model.CVCSentence `json:"sentences"`
	Count     int                 `json:"count"`
}

type storiesResponse struct {
	Stories []model.CVCStory `json:"stories"`
	Count   int              `json:"count"`
}

// HandleGetWords handles GET /api/cvc-words requests.
func (h *CatalogHandler) HandleGetWords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	words, err := h.deps.Words(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", ErrInternal)
		return
	}
	writeJSON(w, http.StatusOK, wordsResponse{Words: words, Count: len(words)})
}

// HandleGetSentences handles GET /api/cvc-sentences requests.
func (h *CatalogHandler) HandleGetSentences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sentences, err := h.deps.Sentences(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", ErrInternal)
		return
	}
	writeJSON(w, http.StatusOK, sentencesResponse{Sentences: sentences, Count: len(sentences)})
}

// HandleGetStories handles GET /api/cvc-stories requests.
func (h *CatalogHandler) HandleGetStories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	stories, err := h.deps.Stories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", ErrInternal)
		return
	}
	writeJSON(w, http.StatusOK, storiesResponse{Stories: stories, Count: len(stories)})
}
