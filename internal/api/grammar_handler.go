package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guvenchemy/MerkutY-BTK/internal/api/shared"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

// GrammarHandler handles grammar ledger endpoints.
type GrammarHandler struct {
	grammarService service.GrammarService
	logger         *slog.Logger
}

// NewGrammarHandler creates a new GrammarHandler.
func NewGrammarHandler(
	grammarService service.GrammarService,
	logger *slog.Logger,
) *GrammarHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GrammarHandler{
		grammarService: grammarService,
		logger:         logger.With("component", "grammar_handler"),
	}
}

// SetPatternStatusRequest is the request body for marking a grammar pattern.
type SetPatternStatusRequest struct {
	Username   string `json:"username"    validate:"required"`
	PatternKey string `json:"pattern_key" validate:"required,max=100"`
	Status     string `json:"status"      validate:"required,oneof=known practice unknown"`
}

// SetPatternStatus handles POST /api/grammar/status.
func (h *GrammarHandler) SetPatternStatus(w http.ResponseWriter, r *http.Request) {
	var req SetPatternStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	ps, err := h.grammarService.SetPatternStatus(
		r.Context(), req.Username, req.PatternKey, domain.PatternStatusValue(req.Status))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ps)
}

// Overview handles GET /api/grammar/overview/{username}. Every catalog
// pattern is reported, grouped by level, with unmarked patterns as unknown.
func (h *GrammarHandler) Overview(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	overview, err := h.grammarService.Overview(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, overview)
}
