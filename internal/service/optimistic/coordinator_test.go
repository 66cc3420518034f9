package optimistic

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/logger"
)

type recordingNotifier struct {
	mu       sync.Mutex
	errors   []string
	warnings []string
	success  []string
}

func (n *recordingNotifier) Success(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.success = append(n.success, title)
}

func (n *recordingNotifier) Error(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, title+": "+message)
}

func (n *recordingNotifier) Warning(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warnings = append(n.warnings, title)
}

func (n *recordingNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

func newTestCoordinator(n Notifier) *Coordinator {
	return NewCoordinator(n, nil, logger.NewWithZerolog(zerolog.New(io.Discard)), time.Minute)
}

func snapshot() *domain.Reservation {
	return &domain.Reservation{
		ID:       7,
		RoomID:   101,
		CheckIn:  time.Date(2025, time.July, 20, 14, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, time.July, 23, 10, 0, 0, 0, time.UTC),
		Status:   domain.StatusConfirmed,
		Adults:   2,
	}
}

func TestExecute_Success(t *testing.T) {
	n := &recordingNotifier{}
	c := newTestCoordinator(n)
	applied := false

	res := Execute(context.Background(), c, Mutation[int64]{
		Kind:  domain.OperationCreate,
		New:   snapshot(),
		Apply: func() { applied = true },
		Rollback: func() {
			t.Fatal("rollback must not run on success")
		},
		Commit: func(ctx context.Context) (int64, error) {
			assert.True(t, applied, "local state is applied before the store call")
			assert.Len(t, c.PendingOperations(), 1)
			return 42, nil
		},
	})

	assert.True(t, res.Success)
	assert.Equal(t, int64(42), res.Data)
	assert.NoError(t, res.Err)
	assert.NotEmpty(t, res.OperationID)
	assert.Empty(t, c.Operations())
	assert.Equal(t, domain.OperationStats{Succeeded: 1}, c.Statistics())
	assert.Zero(t, n.errorCount())
}

func TestExecute_FailureRollsBackAndRetainsRecord(t *testing.T) {
	n := &recordingNotifier{}
	c := newTestCoordinator(n)
	state := "original"
	storeErr := errors.New("connection reset")

	res := Execute(context.Background(), c, Mutation[struct{}]{
		Kind:     domain.OperationMove,
		Original: snapshot(),
		New:      snapshot(),
		Apply:    func() { state = "moved" },
		Rollback: func() { state = "original" },
		Commit: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, storeErr
		},
	})

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, storeErr)
	assert.Equal(t, "original", state)

	ops := c.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, res.OperationID, ops[0].ID)
	assert.Equal(t, domain.OperationRolledBack, ops[0].Status)
	assert.Equal(t, "connection reset", ops[0].Error)
	assert.NotNil(t, ops[0].ResolvedAt)
	assert.Equal(t, domain.OperationMove, ops[0].Kind)

	assert.Empty(t, c.PendingOperations())
	assert.Equal(t, domain.OperationStats{Total: 1, RolledBack: 1}, c.Statistics())
	assert.Equal(t, 1, n.errorCount())
}

func TestExecute_PanicInCommitIsAFailure(t *testing.T) {
	c := newTestCoordinator(&recordingNotifier{})
	rolledBack := false

	res := Execute(context.Background(), c, Mutation[string]{
		Kind:     domain.OperationUpdate,
		Rollback: func() { rolledBack = true },
		Commit: func(ctx context.Context) (string, error) {
			panic("nil pointer in transport")
		},
	})

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrCommitPanic)
	assert.True(t, rolledBack)
}

func TestExecute_MissingCommit(t *testing.T) {
	c := newTestCoordinator(&recordingNotifier{})

	res := Execute(context.Background(), c, Mutation[string]{Kind: domain.OperationDelete})
	assert.ErrorIs(t, res.Err, ErrNoCommit)
}

func TestForceRollback_RunsRollbackOnce(t *testing.T) {
	n := &recordingNotifier{}
	c := newTestCoordinator(n)
	release := make(chan error)
	var rollbacks int
	var mu sync.Mutex

	done := make(chan Result[struct{}])
	go func() {
		done <- Execute(context.Background(), c, Mutation[struct{}]{
			Kind: domain.OperationDelete,
			Rollback: func() {
				mu.Lock()
				rollbacks++
				mu.Unlock()
			},
			Commit: func(ctx context.Context) (struct{}, error) {
				return struct{}{}, <-release
			},
		})
	}()

	require.Eventually(t, c.HasPending, time.Second, 5*time.Millisecond)
	pending := c.PendingOperations()
	require.Len(t, pending, 1)

	require.NoError(t, c.ForceRollback(pending[0].ID))
	assert.ErrorIs(t, c.ForceRollback(pending[0].ID), ErrOperationNotPending)
	assert.ErrorIs(t, c.ForceRollback("missing"), ErrOperationNotFound)
	assert.False(t, c.HasPending())

	release <- errors.New("timeout")
	res := <-done
	assert.False(t, res.Success)

	mu.Lock()
	assert.Equal(t, 1, rollbacks)
	mu.Unlock()

	ops := c.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, domain.OperationRolledBack, ops[0].Status)
	assert.Equal(t, "timeout", ops[0].Error)
	assert.Len(t, n.warnings, 1)
}

func TestRollbackAllPending(t *testing.T) {
	c := newTestCoordinator(&recordingNotifier{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	var mu sync.Mutex
	rolledBack := 0

	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Execute(context.Background(), c, Mutation[struct{}]{
				Kind: domain.OperationUpdate,
				Rollback: func() {
					mu.Lock()
					rolledBack++
					mu.Unlock()
				},
				Commit: func(ctx context.Context) (struct{}, error) {
					<-release
					return struct{}{}, errors.New("store unavailable")
				},
			})
		}()
	}

	require.Eventually(t, func() bool { return c.Statistics().Pending == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, c.RollbackAllPending())
	assert.Equal(t, 0, c.RollbackAllPending())

	close(release)
	wg.Wait()

	assert.Equal(t, 3, rolledBack)
	assert.Equal(t, domain.OperationStats{Total: 3, RolledBack: 3}, c.Statistics())
}

func TestCleanup_PurgesAfterRetention(t *testing.T) {
	c := newTestCoordinator(&recordingNotifier{})
	now := time.Date(2025, time.July, 20, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	Execute(context.Background(), c, Mutation[struct{}]{
		Kind: domain.OperationCreate,
		Commit: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, errors.New("duplicate key")
		},
	})
	require.Len(t, c.Operations(), 1)

	now = now.Add(30 * time.Second)
	assert.Equal(t, 0, c.Cleanup())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, c.Cleanup())
	assert.Empty(t, c.Operations())
}

func TestOperations_SnapshotsAreCopies(t *testing.T) {
	c := newTestCoordinator(&recordingNotifier{})
	original := snapshot()

	Execute(context.Background(), c, Mutation[struct{}]{
		Kind:     domain.OperationUpdate,
		Original: original,
		Commit: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, errors.New("conflict")
		},
	})

	original.RoomID = 999
	ops := c.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, int64(101), ops[0].Original.RoomID)
	assert.Nil(t, ops[0].New)
}
