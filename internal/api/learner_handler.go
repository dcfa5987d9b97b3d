package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guvenchemy/MerkutY-BTK/internal/api/shared"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

// LearnerHandler handles learner registration and lookup endpoints.
type LearnerHandler struct {
	learnerService service.LearnerService
	logger         *slog.Logger
}

// NewLearnerHandler creates a new LearnerHandler.
func NewLearnerHandler(
	learnerService service.LearnerService,
	logger *slog.Logger,
) *LearnerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LearnerHandler{
		learnerService: learnerService,
		logger:         logger.With("component", "learner_handler"),
	}
}

// CreateLearnerRequest is the request body for registering a learner.
type CreateLearnerRequest struct {
	Username       string `json:"username"        validate:"required,min=3,max=50"`
	NativeLanguage string `json:"native_language" validate:"omitempty,max=50"`
}

// RegisterLearner handles POST /api/learners.
func (h *LearnerHandler) RegisterLearner(w http.ResponseWriter, r *http.Request) {
	var req CreateLearnerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	learner, err := h.learnerService.Register(r.Context(), req.Username, req.NativeLanguage)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, learner)
}

// GetLearner handles GET /api/learners/{username}.
func (h *LearnerHandler) GetLearner(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	learner, err := h.learnerService.GetByUsername(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, learner)
}
