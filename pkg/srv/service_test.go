package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingService struct {
	mu       sync.Mutex
	started  chan struct{}
	stop     chan struct{}
	shutdown int
	order    *[]string
	name     string
}

func newBlocking(name string, order *[]string) *blockingService {
	return &blockingService{
		started: make(chan struct{}),
		stop:    make(chan struct{}),
		order:   order,
		name:    name,
	}
}

func (s *blockingService) Start(ctx context.Context) error {
	close(s.started)
	select {
	case <-ctx.Done():
	case <-s.stop:
	}
	return nil
}

func (s *blockingService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdown++
	*s.order = append(*s.order, s.name)
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	return nil
}

func testCtx() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func TestRun_ShutdownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(testCtx())
	var order []string
	a := newBlocking("a", &order)
	b := newBlocking("b", &order)

	done := make(chan error, 1)
	go func() { done <- Run(ctx, []Service{a, b}) }()

	<-a.started
	<-b.started
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, []string{"b", "a"}, order)
}

func TestRun_StartFailureStopsOthers(t *testing.T) {
	var order []string
	a := newBlocking("a", &order)
	boom := errors.New("boom")
	failing := &failingService{err: boom}

	err := Run(testCtx(), []Service{a, failing})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, a.shutdown)
}

func TestRun_CleanupError(t *testing.T) {
	ctx, cancel := context.WithCancel(testCtx())
	cancel()

	closeErr := errors.New("close failed")
	err := Run(ctx, []Service{NewCleanup(func() error { return closeErr })})
	assert.ErrorIs(t, err, closeErr)
}

type failingService struct {
	err error
}

func (s *failingService) Start(context.Context) error    { return s.err }
func (s *failingService) Shutdown(context.Context) error { return nil }
