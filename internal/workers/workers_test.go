package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

// countingAvatarService records List calls so the refresh loop can be
// observed without a real gateway.
type countingAvatarService struct {
	mu    sync.Mutex
	calls int
}

func (s *countingAvatarService) List(context.Context, models.Category) ([]models.Avatar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return nil, nil
}

func (s *countingAvatarService) Publish(_ context.Context, avatar models.Avatar) (models.Avatar, error) {
	return avatar, nil
}

func (s *countingAvatarService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestCacheRefreshWorker_RefreshesOnTick(t *testing.T) {
	svc := &countingAvatarService{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewCacheRefreshWorker(svc, 5*time.Millisecond, logger.Nop())
	w.Run(ctx)

	deadline := time.After(2 * time.Second)
	for svc.callCount() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 refreshes, got %d", svc.callCount())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestCacheRefreshWorker_DisabledInterval(t *testing.T) {
	svc := &countingAvatarService{}

	w := NewCacheRefreshWorker(svc, -1, logger.Nop())
	w.Run(context.Background())

	time.Sleep(20 * time.Millisecond)
	if svc.callCount() != 0 {
		t.Errorf("disabled worker should not refresh, got %d calls", svc.callCount())
	}
}
