package core

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"symptom-checker/internal/history"
	"symptom-checker/internal/llm"
	"symptom-checker/internal/messaging"
	"symptom-checker/internal/storage"
	"symptom-checker/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	reply string
	err   error

	mu      sync.Mutex
	prompts []string
}

func (m *fakeModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	return m.reply, m.err
}

func (m *fakeModel) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

type blockingModel struct{}

func (blockingModel) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

type brokenStore struct {
	err error
}

func (s *brokenStore) LoadAll(ctx context.Context) ([]api.HistoryRecord, error) {
	return nil, s.err
}

func (s *brokenStore) Prepend(ctx context.Context, record api.HistoryRecord) error {
	return s.err
}

type failingPublisher struct{}

func (failingPublisher) PublishHistoryRecorded(ctx context.Context, payload messaging.HistoryRecordedPayload) error {
	return errors.New("broker unavailable")
}

func (failingPublisher) Close() {}

func newTestStore(t *testing.T) history.Store {
	t.Helper()
	provider, err := storage.NewLocalProvider(t.TempDir())
	require.NoError(t, err)
	store, err := history.NewDocumentStore(context.Background(), provider, "", "history.json")
	require.NoError(t, err)
	return store
}

func strPtr(s string) *string {
	return &s
}

func validRequest() api.CheckSymptomsRequest {
	return api.CheckSymptomsRequest{
		Symptoms: strPtr("fever and cough"),
		Age:      api.Age("30"),
		Gender:   strPtr("male"),
	}
}

var fixedTime = time.Date(2024, 5, 1, 10, 30, 15, 0, time.Local)

func newTestChecker(model *fakeModel, store history.Store, publisher messaging.Publisher) *SymptomChecker {
	var m llm.Model
	if model != nil {
		m = model
	}
	checker := NewSymptomChecker(m, store, publisher, time.Second)
	checker.now = func() time.Time { return fixedTime }
	return checker
}

func TestCheckSuccess(t *testing.T) {
	store := newTestStore(t)
	model := &fakeModel{reply: fullReply}
	queue := messaging.NewInMemoryQueue()
	defer queue.Close()

	checker := newTestChecker(model, store, queue)

	analysis, err := checker.Check(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, ParseSections(fullReply), analysis)

	require.Equal(t, 1, model.calls())
	assert.Equal(t, BuildPrompt("fever and cough", api.Age("30"), "male"), model.prompts[0])

	records := checker.History(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, "fever and cough", records[0].Symptoms)
	assert.Equal(t, "30", string(records[0].Age))
	assert.Equal(t, "male", records[0].Gender)
	assert.Equal(t, analysis, records[0].Analysis)
	assert.Equal(t, "2024-05-01 10:30:15", records[0].Timestamp)

	select {
	case task := <-queue.Tasks():
		assert.Equal(t, messaging.HistoryQueue, task.Type())
	default:
		t.Fatal("expected a history event to be published")
	}
}

func TestCheckNotConfigured(t *testing.T) {
	store := newTestStore(t)
	checker := newTestChecker(nil, store, nil)
	assert.False(t, checker.Configured())

	// configuration is checked before the request is validated
	_, err := checker.Check(context.Background(), api.CheckSymptomsRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = checker.Check(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.Empty(t, checker.History(context.Background()))
}

func TestCheckValidation(t *testing.T) {
	tests := []struct {
		name   string
		req    api.CheckSymptomsRequest
		reason string
	}{
		{
			name:   "missing symptoms",
			req:    api.CheckSymptomsRequest{Age: api.Age("30"), Gender: strPtr("male")},
			reason: ReasonInvalidInput,
		},
		{
			name:   "missing age",
			req:    api.CheckSymptomsRequest{Symptoms: strPtr("cough"), Gender: strPtr("male")},
			reason: ReasonInvalidInput,
		},
		{
			name:   "missing gender",
			req:    api.CheckSymptomsRequest{Symptoms: strPtr("cough"), Age: api.Age("30")},
			reason: ReasonInvalidInput,
		},
		{
			name:   "empty symptoms",
			req:    api.CheckSymptomsRequest{Symptoms: strPtr(""), Age: api.Age("30"), Gender: strPtr("male")},
			reason: ReasonFieldsRequired,
		},
		{
			name:   "blank symptoms",
			req:    api.CheckSymptomsRequest{Symptoms: strPtr(" \n\t "), Age: api.Age("30"), Gender: strPtr("male")},
			reason: ReasonFieldsRequired,
		},
		{
			name:   "zero age",
			req:    api.CheckSymptomsRequest{Symptoms: strPtr("cough"), Age: api.Age("0"), Gender: strPtr("male")},
			reason: ReasonFieldsRequired,
		},
		{
			name:   "empty age",
			req:    api.CheckSymptomsRequest{Symptoms: strPtr("cough"), Age: api.Age(`""`), Gender: strPtr("male")},
			reason: ReasonFieldsRequired,
		},
		{
			name:   "null age",
			req:    api.CheckSymptomsRequest{Symptoms: strPtr("cough"), Age: api.Age("null"), Gender: strPtr("male")},
			reason: ReasonFieldsRequired,
		},
		{
			name:   "empty gender",
			req:    api.CheckSymptomsRequest{Symptoms: strPtr("cough"), Age: api.Age(`"30"`), Gender: strPtr("")},
			reason: ReasonFieldsRequired,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			model := &fakeModel{reply: fullReply}
			checker := newTestChecker(model, store, nil)

			_, err := checker.Check(context.Background(), tc.req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.reason, verr.Reason)

			assert.Equal(t, 0, model.calls())
			assert.Empty(t, checker.History(context.Background()))
		})
	}
}

func TestCheckModelFailure(t *testing.T) {
	store := newTestStore(t)
	model := &fakeModel{err: errors.New("provider returned 503")}
	checker := newTestChecker(model, store, nil)

	_, err := checker.Check(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrModel)
	assert.Empty(t, checker.History(context.Background()))
}

func TestCheckModelTimeout(t *testing.T) {
	store := newTestStore(t)
	checker := NewSymptomChecker(blockingModel{}, store, nil, 20*time.Millisecond)

	_, err := checker.Check(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrModel)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCheckStorageFailure(t *testing.T) {
	model := &fakeModel{reply: fullReply}
	checker := newTestChecker(model, &brokenStore{err: errors.New("read-only file system")}, nil)

	_, err := checker.Check(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStorage)
}

func TestCheckPublishFailureIsIgnored(t *testing.T) {
	store := newTestStore(t)
	model := &fakeModel{reply: fullReply}
	checker := newTestChecker(model, store, failingPublisher{})

	_, err := checker.Check(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, checker.History(context.Background()), 1)
}

func TestCheckNewestFirst(t *testing.T) {
	store := newTestStore(t)
	model := &fakeModel{reply: fullReply}
	checker := newTestChecker(model, store, nil)

	first := validRequest()
	second := validRequest()
	second.Symptoms = strPtr("rash")

	_, err := checker.Check(context.Background(), first)
	require.NoError(t, err)
	_, err = checker.Check(context.Background(), second)
	require.NoError(t, err)

	records := checker.History(context.Background())
	require.Len(t, records, 2)
	assert.Equal(t, "rash", records[0].Symptoms)
	assert.Equal(t, "fever and cough", records[1].Symptoms)
}

func TestHistoryStoreFailure(t *testing.T) {
	checker := newTestChecker(nil, &brokenStore{err: errors.New("boom")}, nil)

	records := checker.History(context.Background())
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCheckConcurrentRequests(t *testing.T) {
	provider, err := storage.NewLocalProvider(t.TempDir())
	require.NoError(t, err)
	store, err := history.NewDocumentStore(context.Background(), provider, "", filepath.Join("data", "history.json"))
	require.NoError(t, err)

	model := &fakeModel{reply: fullReply}
	checker := newTestChecker(model, store, nil)

	const n = 16
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := checker.Check(context.Background(), validRequest())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, checker.History(context.Background()), n)
}
