package api

import (
	"log/slog"
	"net/http"

	"github.com/guvenchemy/MerkutY-BTK/internal/api/shared"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

// AdaptationHandler handles the text adaptation endpoint.
type AdaptationHandler struct {
	adaptationService service.AdaptationService
	logger            *slog.Logger
}

// NewAdaptationHandler creates a new AdaptationHandler.
func NewAdaptationHandler(
	adaptationService service.AdaptationService,
	logger *slog.Logger,
) *AdaptationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdaptationHandler{
		adaptationService: adaptationService,
		logger:            logger.With("component", "adaptation_handler"),
	}
}

// AdaptTextRequest is the request body for rewriting a text one level above
// the learner's assessed level.
type AdaptTextRequest struct {
	Username string `json:"username" validate:"required"`
	Text     string `json:"text"     validate:"required,max=50000"`
}

// AdaptText handles POST /api/adaptation/rewrite.
func (h *AdaptationHandler) AdaptText(w http.ResponseWriter, r *http.Request) {
	var req AdaptTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result, err := h.adaptationService.AdaptText(r.Context(), req.Username, req.Text)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
