package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guvenchemy/MerkutY-BTK/internal/api/shared"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

// maxImportUploadBytes caps workbook uploads at 8 MiB.
const maxImportUploadBytes = 8 << 20

// VocabularyHandler handles word ledger and bulk import endpoints.
type VocabularyHandler struct {
	vocabularyService service.VocabularyService
	logger            *slog.Logger
}

// NewVocabularyHandler creates a new VocabularyHandler.
func NewVocabularyHandler(
	vocabularyService service.VocabularyService,
	logger *slog.Logger,
) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{
		vocabularyService: vocabularyService,
		logger:            logger.With("component", "vocabulary_handler"),
	}
}

// SetWordStatusRequest is the request body for marking a word.
type SetWordStatusRequest struct {
	Username    string `json:"username"    validate:"required"`
	Word        string `json:"word"        validate:"required,max=100"`
	Status      string `json:"status"      validate:"required,oneof=known unknown ignored"`
	Translation string `json:"translation" validate:"omitempty,max=200"`
}

// SetWordStatus handles POST /api/vocabulary/words.
func (h *VocabularyHandler) SetWordStatus(w http.ResponseWriter, r *http.Request) {
	var req SetWordStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	ws, err := h.vocabularyService.SetWordStatus(
		r.Context(), req.Username, req.Word, domain.WordStatusValue(req.Status), req.Translation)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ws)
}

// ListWordsResponse wraps a learner's ledger rows for one status.
type ListWordsResponse struct {
	Username string               `json:"username"`
	Status   string               `json:"status"`
	Count    int                  `json:"count"`
	Words    []*domain.WordStatus `json:"words"`
}

// ListWords handles GET /api/vocabulary/words/{username}?status=known.
func (h *VocabularyHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	status := domain.WordStatusValue(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.WordStatusKnown
	}
	if !status.IsValid() {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Status must be one of: known, unknown, ignored")
		return
	}

	words, err := h.vocabularyService.ListWords(r.Context(), username, status)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListWordsResponse{
		Username: username,
		Status:   string(status),
		Count:    len(words),
		Words:    words,
	})
}

// ImportWorkbook handles POST /api/vocabulary/import. It accepts a multipart
// form with a "username" field and a "workbook" xlsx file, and enqueues a
// background task that marks every extracted word as known.
func (h *VocabularyHandler) ImportWorkbook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportUploadBytes)
	if err := r.ParseMultipartForm(maxImportUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Expected a multipart form with a workbook file")
		return
	}

	username := r.FormValue("username")
	if username == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username is required")
		return
	}

	file, header, err := r.FormFile("workbook")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Workbook file is required")
		return
	}
	defer func() { _ = file.Close() }()

	h.logger.Debug("processing workbook upload",
		"username", username,
		"filename", header.Filename,
		"size", header.Size)

	receipt, err := h.vocabularyService.ImportWorkbook(r.Context(), username, file)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, receipt)
}
