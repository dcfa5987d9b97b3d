package service_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
	"github.com/guvenchemy/MerkutY-BTK/internal/task"
)

// fakeLearnerStore is an in-memory store.LearnerStore.
type fakeLearnerStore struct {
	mu       sync.Mutex
	learners map[string]*domain.Learner
}

func newFakeLearnerStore() *fakeLearnerStore {
	return &fakeLearnerStore{learners: make(map[string]*domain.Learner)}
}

func (s *fakeLearnerStore) Create(ctx context.Context, learner *domain.Learner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.learners[learner.Username]; exists {
		return store.ErrUsernameExists
	}
	s.learners[learner.Username] = learner
	return nil
}

func (s *fakeLearnerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Learner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.learners {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, store.ErrLearnerNotFound
}

func (s *fakeLearnerStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.Learner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.learners[username]; ok {
		return l, nil
	}
	return nil, store.ErrLearnerNotFound
}

func (s *fakeLearnerStore) WithTx(tx *sql.Tx) store.LearnerStore { return s }

// fakeWordStatusStore is an in-memory store.WordStatusStore. It counts the
// set-construction reads so tests can pin how services load the ledger.
type fakeWordStatusStore struct {
	mu            sync.Mutex
	rows          map[uuid.UUID]map[string]*domain.WordStatus
	snapshotCalls int
	byStatusCalls int
}

func newFakeWordStatusStore() *fakeWordStatusStore {
	return &fakeWordStatusStore{rows: make(map[uuid.UUID]map[string]*domain.WordStatus)}
}

func (s *fakeWordStatusStore) Upsert(ctx context.Context, ws *domain.WordStatus) error {
	if err := ws.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[ws.LearnerID] == nil {
		s.rows[ws.LearnerID] = make(map[string]*domain.WordStatus)
	}
	s.rows[ws.LearnerID][ws.Word] = ws
	return nil
}

func (s *fakeWordStatusStore) Get(
	ctx context.Context,
	learnerID uuid.UUID,
	word string,
) (*domain.WordStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ws, ok := s.rows[learnerID][domain.CanonicalWord(word)]; ok {
		return ws, nil
	}
	return nil, store.ErrWordStatusNotFound
}

func (s *fakeWordStatusStore) ListByStatus(
	ctx context.Context,
	learnerID uuid.UUID,
	status domain.WordStatusValue,
) ([]*domain.WordStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.WordStatus
	for _, ws := range s.rows[learnerID] {
		if ws.Status == status {
			out = append(out, ws)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out, nil
}

func (s *fakeWordStatusStore) WordsByStatus(
	ctx context.Context,
	learnerID uuid.UUID,
	status domain.WordStatusValue,
) ([]string, error) {
	s.mu.Lock()
	s.byStatusCalls++
	s.mu.Unlock()
	rows, _ := s.ListByStatus(ctx, learnerID, status)
	words := make([]string, 0, len(rows))
	for _, ws := range rows {
		words = append(words, ws.Word)
	}
	return words, nil
}

func (s *fakeWordStatusStore) WordsSnapshot(
	ctx context.Context,
	learnerID uuid.UUID,
) (map[domain.WordStatusValue][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshotCalls++
	snapshot := make(map[domain.WordStatusValue][]string)
	for _, ws := range s.rows[learnerID] {
		snapshot[ws.Status] = append(snapshot[ws.Status], ws.Word)
	}
	for status := range snapshot {
		sort.Strings(snapshot[status])
	}
	return snapshot, nil
}

func (s *fakeWordStatusStore) CountByStatus(
	ctx context.Context,
	learnerID uuid.UUID,
	status domain.WordStatusValue,
) (int, error) {
	words, _ := s.WordsByStatus(ctx, learnerID, status)
	return len(words), nil
}

func (s *fakeWordStatusStore) WithTx(tx *sql.Tx) store.WordStatusStore { return s }

// fakePatternStatusStore is an in-memory store.PatternStatusStore.
type fakePatternStatusStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]map[string]*domain.PatternStatus
}

func newFakePatternStatusStore() *fakePatternStatusStore {
	return &fakePatternStatusStore{rows: make(map[uuid.UUID]map[string]*domain.PatternStatus)}
}

func (s *fakePatternStatusStore) Upsert(ctx context.Context, ps *domain.PatternStatus) error {
	if err := ps.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[ps.LearnerID] == nil {
		s.rows[ps.LearnerID] = make(map[string]*domain.PatternStatus)
	}
	s.rows[ps.LearnerID][ps.PatternKey] = ps
	return nil
}

func (s *fakePatternStatusStore) Get(
	ctx context.Context,
	learnerID uuid.UUID,
	patternKey string,
) (*domain.PatternStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ps, ok := s.rows[learnerID][patternKey]; ok {
		return ps, nil
	}
	return nil, store.ErrPatternStatusNotFound
}

func (s *fakePatternStatusStore) List(
	ctx context.Context,
	learnerID uuid.UUID,
) ([]*domain.PatternStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.PatternStatus
	for _, ps := range s.rows[learnerID] {
		out = append(out, ps)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PatternKey < out[j].PatternKey })
	return out, nil
}

func (s *fakePatternStatusStore) KeysByStatus(
	ctx context.Context,
	learnerID uuid.UUID,
	status domain.PatternStatusValue,
) ([]string, error) {
	rows, _ := s.List(ctx, learnerID)
	var keys []string
	for _, ps := range rows {
		if ps.Status == status {
			keys = append(keys, ps.PatternKey)
		}
	}
	return keys, nil
}

func (s *fakePatternStatusStore) WithTx(tx *sql.Tx) store.PatternStatusStore { return s }

// fakeTaskRunner records submitted tasks without executing them.
type fakeTaskRunner struct {
	mu    sync.Mutex
	tasks []task.Task
	err   error
}

func (r *fakeTaskRunner) Submit(t task.Task) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, t)
	return nil
}
