package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guvenchemy/MerkutY-BTK/internal/api"
	"github.com/guvenchemy/MerkutY-BTK/internal/api/shared"
	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
)

// fakeLearnerService backs the handler tests with an in-memory map.
type fakeLearnerService struct {
	learners map[string]*domain.Learner
}

func newFakeLearnerService() *fakeLearnerService {
	return &fakeLearnerService{learners: make(map[string]*domain.Learner)}
}

func (f *fakeLearnerService) Register(
	ctx context.Context,
	username, nativeLanguage string,
) (*domain.Learner, error) {
	if _, exists := f.learners[username]; exists {
		return nil, service.ErrUsernameTaken
	}
	learner, err := domain.NewLearner(username, nativeLanguage)
	if err != nil {
		return nil, err
	}
	f.learners[username] = learner
	return learner, nil
}

func (f *fakeLearnerService) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.Learner, error) {
	learner, ok := f.learners[username]
	if !ok {
		return nil, service.ErrLearnerNotFound
	}
	return learner, nil
}

func newLearnerRouter(svc service.LearnerService) http.Handler {
	handler := api.NewLearnerHandler(svc, logger.NewTestLogger())
	r := chi.NewRouter()
	r.Post("/api/learners", handler.RegisterLearner)
	r.Get("/api/learners/{username}", handler.GetLearner)
	return r
}

func TestRegisterLearner(t *testing.T) {
	t.Parallel()

	router := newLearnerRouter(newFakeLearnerService())

	body, err := json.Marshal(api.CreateLearnerRequest{
		Username:       "ayse",
		NativeLanguage: "tr",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/learners", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var learner domain.Learner
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&learner))
	assert.Equal(t, "ayse", learner.Username)
	assert.Equal(t, "tr", learner.NativeLanguage)
	assert.NotZero(t, learner.ID)
}

func TestRegisterLearnerDuplicate(t *testing.T) {
	t.Parallel()

	svc := newFakeLearnerService()
	_, err := svc.Register(context.Background(), "ayse", "tr")
	require.NoError(t, err)

	router := newLearnerRouter(svc)

	body, err := json.Marshal(api.CreateLearnerRequest{Username: "ayse"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/learners", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Username is already taken", resp.Error)
}

func TestRegisterLearnerValidation(t *testing.T) {
	t.Parallel()

	router := newLearnerRouter(newFakeLearnerService())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"username":`},
		{name: "username too short", body: `{"username": "ab"}`},
		{name: "missing username", body: `{}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(
				http.MethodPost, "/api/learners", bytes.NewReader([]byte(tc.body)))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetLearnerNotFound(t *testing.T) {
	t.Parallel()

	router := newLearnerRouter(newFakeLearnerService())

	req := httptest.NewRequest(http.MethodGet, "/api/learners/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
