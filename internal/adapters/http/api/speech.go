// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// SpeechHandler answers pronunciation checks. Recognition is not wired to a
// speech-to-text backend yet; responses carry fixed mock accuracy so clients
// can build against the final shape.
// TODO: integrate a real speech-to-text backend for /api/speech-check.
type SpeechHandler struct{}

// NewSpeechHandler creates a new speech handler.
func NewSpeechHandler() *SpeechHandler {
	return &SpeechHandler{}
}

type speechCheckRequest struct {
	Letter string `json:"letter"`
}

type speechCheckResponse struct {
	Recognized string `json:"recognized"`
	Accuracy   int    `json:"accuracy"`
	Correct    bool   `json:"correct"`
	Message    string `json:"message"`
}

// HandleSpeechCheck handles POST /api/speech-check requests.
func (h *SpeechHandler) HandleSpeechCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req speechCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err)
		return
	}
	letter := strings.TrimSpace(req.Letter)
	if letter == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("letter parameter required"))
		return
	}

	writeJSON(w, http.StatusOK, speechCheckResponse{
		Recognized: strings.ToUpper(letter),
		Accuracy:   100,
		Correct:    true,
		Message:    "Speech recognition will be implemented soon",
	})
}

type pronunciationRequest struct {
	Word string `json:"word"`
}

type pronunciationResponse struct {
	Word     string `json:"word"`
	Accuracy int    `json:"accuracy"`
	Correct  bool   `json:"correct"`
	Message  string `json:"message"`
}

// HandleCheckPronunciation handles POST /api/check-pronunciation requests.
func (h *SpeechHandler) HandleCheckPronunciation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req pronunciationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err)
		return
	}
	word := strings.ToUpper(strings.TrimSpace(req.Word))
	if word == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("word parameter required"))
		return
	}

	writeJSON(w, http.StatusOK, pronunciationResponse{
		Word:     word,
		Accuracy: 85,
		Correct:  true,
		Message:  "رائع! نطق ممتاز",
	})
}
