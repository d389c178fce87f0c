// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/harf/internal/adapters/repository"
	service "github.com/okian/harf/internal/app"
	"github.com/okian/harf/internal/domain/types"
)

// CertificateDependencies defines the interface for certificate lookups.
type CertificateDependencies interface {
	Certificate(ctx context.Context, studentName string) (types.CertificateStatus, error)
}

// CertificateHandler handles completion-certificate requests.
type CertificateHandler struct {
	deps CertificateDependencies
}

// NewCertificateHandler creates a new certificate handler.
func NewCertificateHandler(deps CertificateDependencies) *CertificateHandler {
	return &CertificateHandler{deps: deps}
}

// HandleGetCertificate handles GET /api/certificate/{student} requests.
func (h *CertificateHandler) HandleGetCertificate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/certificate/")
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	status, err := h.deps.Certificate(r.Context(), name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "student_not_found", err)
		return
	case errors.Is(err, service.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error", ErrInternal)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
