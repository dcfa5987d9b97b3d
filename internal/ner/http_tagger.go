package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ErrTaggingFailed is returned when the remote tagger cannot be reached or
// responds with a non-success status.
var ErrTaggingFailed = errors.New("entity tagging failed")

// HTTPTagger calls an external NER service over HTTP. The service receives
// the raw text and returns the entities it found.
type HTTPTagger struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewHTTPTagger creates a tagger for the given endpoint URL.
func NewHTTPTagger(endpoint string, timeout time.Duration, logger *slog.Logger) (*HTTPTagger, error) {
	if endpoint == "" {
		return nil, errors.New("endpoint cannot be empty")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPTagger{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger.With("component", "http_tagger"),
	}, nil
}

var _ Tagger = (*HTTPTagger)(nil)

type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Entities []Entity `json:"entities"`
}

// TagEntities implements Tagger by POSTing the text to the remote service.
func (t *HTTPTagger) TagEntities(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(tagRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTaggingFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTaggingFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Warn("NER request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTaggingFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.logger.Warn("NER service returned non-OK status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrTaggingFailed, resp.StatusCode)
	}

	var parsed tagResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTaggingFailed, err)
	}

	return parsed.Entities, nil
}
