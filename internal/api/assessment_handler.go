package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guvenchemy/MerkutY-BTK/internal/api/shared"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

// AssessmentHandler handles the CEFR level assessment endpoint.
type AssessmentHandler struct {
	assessmentService service.AssessmentService
	logger            *slog.Logger
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(
	assessmentService service.AssessmentService,
	logger *slog.Logger,
) *AssessmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssessmentHandler{
		assessmentService: assessmentService,
		logger:            logger.With("component", "assessment_handler"),
	}
}

// AssessLevel handles GET /api/levels/{username}. The assessment is computed
// fresh from the learner's ledgers on every call.
func (h *AssessmentHandler) AssessLevel(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	assessment, err := h.assessmentService.AssessLevel(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, assessment)
}
