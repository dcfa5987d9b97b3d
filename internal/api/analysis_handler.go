package api

import (
	"log/slog"
	"net/http"

	"github.com/guvenchemy/MerkutY-BTK/internal/api/shared"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

// AnalysisHandler handles text classification and pattern detection.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	logger          *slog.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(
	analysisService service.AnalysisService,
	logger *slog.Logger,
) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger.With("component", "analysis_handler"),
	}
}

// ClassifyTextRequest is the request body for word-by-word classification.
type ClassifyTextRequest struct {
	Username string `json:"username" validate:"required"`
	Text     string `json:"text"     validate:"required,max=50000"`
}

// ClassifyText handles POST /api/analysis/classify.
func (h *AnalysisHandler) ClassifyText(w http.ResponseWriter, r *http.Request) {
	var req ClassifyTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	classification, err := h.analysisService.ClassifyText(r.Context(), req.Username, req.Text)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, classification)
}

// DetectPatternsRequest is the request body for grammar pattern detection.
type DetectPatternsRequest struct {
	Text string `json:"text" validate:"required,max=50000"`
}

// DetectPatternsResponse wraps the detected patterns.
type DetectPatternsResponse struct {
	Patterns []service.DetectedPattern `json:"patterns"`
	Count    int                       `json:"count"`
}

// DetectPatterns handles POST /api/analysis/patterns.
func (h *AnalysisHandler) DetectPatterns(w http.ResponseWriter, r *http.Request) {
	var req DetectPatternsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	patterns, err := h.analysisService.DetectPatterns(r.Context(), req.Text)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DetectPatternsResponse{
		Patterns: patterns,
		Count:    len(patterns),
	})
}
