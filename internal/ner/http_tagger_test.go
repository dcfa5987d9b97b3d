package ner_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guvenchemy/MerkutY-BTK/internal/ner"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
)

func TestHTTPTaggerTagEntities(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Maria lives in Ankara", req.Text)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"entities": []ner.Entity{
				{Text: "Maria", Label: ner.LabelPerson},
				{Text: "Ankara", Label: ner.LabelGeopolitical},
			},
		})
	}))
	defer server.Close()

	tagger, err := ner.NewHTTPTagger(server.URL, time.Second, logger.NewTestLogger())
	require.NoError(t, err)

	entities, err := tagger.TagEntities(context.Background(), "Maria lives in Ankara")
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, ner.LabelPerson, entities[0].Label)
}

func TestHTTPTaggerServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	tagger, err := ner.NewHTTPTagger(server.URL, time.Second, logger.NewTestLogger())
	require.NoError(t, err)

	_, err = tagger.TagEntities(context.Background(), "some text")
	assert.ErrorIs(t, err, ner.ErrTaggingFailed)
}

func TestNewHTTPTaggerValidation(t *testing.T) {
	t.Parallel()

	_, err := ner.NewHTTPTagger("", time.Second, logger.NewTestLogger())
	assert.Error(t, err)
}
