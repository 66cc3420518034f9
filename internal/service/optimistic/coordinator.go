// Package optimistic applies reservation mutations locally before the store
// confirms them and undoes them when the store rejects them.
package optimistic

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// DefaultRetention how long rolled-back operations stay visible for diagnostics
const DefaultRetention = 5 * time.Minute

type entry struct {
	op       domain.PendingOperation
	rollback func()
	undone   bool
}

// Coordinator registry of in-flight optimistic operations
type Coordinator struct {
	mu        sync.Mutex
	entries   map[string]*entry
	succeeded int

	notifier  Notifier
	metrics   Metrics
	logger    Logger
	retention time.Duration
	now       func() time.Time
}

// NewCoordinator creates a coordinator. metrics may be nil.
func NewCoordinator(notifier Notifier, metrics Metrics, logger Logger, retention time.Duration) *Coordinator {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Coordinator{
		entries:   make(map[string]*entry),
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		retention: retention,
		now:       time.Now,
	}
}

// Execute registers the operation, applies it locally, awaits the commit and
// either drops the record (success) or rolls back and keeps it (failure).
// A panic inside Commit is treated as a failure.
func Execute[T any](ctx context.Context, c *Coordinator, m Mutation[T]) Result[T] {
	// 1. Регистрируем операцию
	id := c.register(m.Kind, m.Original, m.New, m.Rollback)
	c.logger.Info("Optimistic: %s operation id=%s started", m.Kind, id)

	// 2. Применяем изменение локально
	if m.Apply != nil {
		m.Apply()
	}

	// 3. Ждем подтверждения хранилища
	data, err := commit(ctx, m.Commit)

	// 4. Успех: запись удаляется
	if err == nil {
		c.succeed(id, m.Kind)
		c.logger.Info("Optimistic: %s operation id=%s confirmed", m.Kind, id)
		return Result[T]{OperationID: id, Success: true, Data: data}
	}

	// 5. Ошибка: откат и уведомление оператора
	c.logger.Warn("Optimistic: %s operation id=%s failed, rolling back: %v", m.Kind, id, err)
	c.fail(id, m.Kind, err)
	c.notifier.Error(failureTitle(m.Kind), err.Error())

	var zero T
	return Result[T]{OperationID: id, Success: false, Data: zero, Err: err}
}

func commit[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (data T, err error) {
	if fn == nil {
		return data, ErrNoCommit
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCommitPanic, r)
		}
	}()
	return fn(ctx)
}

func (c *Coordinator) register(kind domain.OperationKind, original, updated *domain.Reservation, rollback func()) string {
	id := uuid.NewString()

	c.mu.Lock()
	c.entries[id] = &entry{
		op: domain.PendingOperation{
			ID:        id,
			Kind:      kind,
			Original:  original.Clone(),
			New:       updated.Clone(),
			Timestamp: c.now(),
			Status:    domain.OperationPending,
		},
		rollback: rollback,
	}
	c.mu.Unlock()

	return id
}

func (c *Coordinator) succeed(id string, kind domain.OperationKind) {
	c.mu.Lock()
	delete(c.entries, id)
	c.succeeded++
	c.mu.Unlock()

	c.metrics.IncOptimisticOperation(string(kind), string(domain.OperationSuccess))
}

// fail marks the operation failed, runs its rollback unless ForceRollback already
// did, and keeps the record as rolled_back until Cleanup purges it.
func (c *Coordinator) fail(id string, kind domain.OperationKind, cause error) {
	c.mu.Lock()
	e, ok := c.entries[id]
	if !ok {
		c.mu.Unlock()
		return
	}
	e.op.Error = cause.Error()
	if e.undone {
		// уже откачена оператором через ForceRollback
		c.mu.Unlock()
		c.metrics.IncOptimisticOperation(string(kind), string(domain.OperationRolledBack))
		return
	}
	e.op.Status = domain.OperationFailed
	c.mu.Unlock()

	c.undo(e)
	c.metrics.IncOptimisticOperation(string(kind), string(domain.OperationRolledBack))
}

// undo runs the rollback at most once per operation
func (c *Coordinator) undo(e *entry) {
	c.mu.Lock()
	if e.undone {
		c.mu.Unlock()
		return
	}
	e.undone = true
	rollback := e.rollback
	c.mu.Unlock()

	if rollback != nil {
		rollback()
	}

	c.mu.Lock()
	resolved := c.now()
	e.op.Status = domain.OperationRolledBack
	e.op.ResolvedAt = &resolved
	c.mu.Unlock()
}

// PendingOperations returns operations still awaiting the store, oldest first
func (c *Coordinator) PendingOperations() []domain.PendingOperation {
	return c.snapshot(func(op *domain.PendingOperation) bool { return op.IsPending() })
}

// Operations returns every tracked operation (pending and retained rolled back), oldest first
func (c *Coordinator) Operations() []domain.PendingOperation {
	return c.snapshot(func(*domain.PendingOperation) bool { return true })
}

// HasPending returns true while at least one operation awaits the store
func (c *Coordinator) HasPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.op.IsPending() {
			return true
		}
	}
	return false
}

// ForceRollback undoes a pending operation without waiting for the store.
// If the store later confirms it, the caller's success path re-applies the stored state.
func (c *Coordinator) ForceRollback(id string) error {
	c.mu.Lock()
	e, ok := c.entries[id]
	if !ok {
		c.mu.Unlock()
		return ErrOperationNotFound
	}
	if !e.op.IsPending() {
		status := e.op.Status
		c.mu.Unlock()
		return fmt.Errorf("%w: status=%s", ErrOperationNotPending, status)
	}
	e.op.Error = "rolled back by operator"
	kind := e.op.Kind
	c.mu.Unlock()

	c.undo(e)
	c.logger.Warn("Optimistic: %s operation id=%s rolled back by operator", kind, id)
	c.notifier.Warning("Operation rolled back", fmt.Sprintf("%s operation %s was rolled back", kind, id))
	return nil
}

// RollbackAllPending force-rolls back every pending operation and returns how many were undone
func (c *Coordinator) RollbackAllPending() int {
	count := 0
	for _, op := range c.PendingOperations() {
		if err := c.ForceRollback(op.ID); err == nil {
			count++
		}
	}
	return count
}

// Statistics counts tracked operations by status
func (c *Coordinator) Statistics() domain.OperationStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := domain.OperationStats{Total: len(c.entries), Succeeded: c.succeeded}
	for _, e := range c.entries {
		switch e.op.Status {
		case domain.OperationPending:
			stats.Pending++
		case domain.OperationFailed:
			stats.Failed++
		case domain.OperationRolledBack:
			stats.RolledBack++
		}
	}
	return stats
}

// Cleanup purges rolled-back operations older than the retention window
func (c *Coordinator) Cleanup() int {
	cutoff := c.now().Add(-c.retention)

	c.mu.Lock()
	defer c.mu.Unlock()

	purged := 0
	for id, e := range c.entries {
		if e.op.Status == domain.OperationRolledBack && e.op.ResolvedAt != nil && e.op.ResolvedAt.Before(cutoff) {
			delete(c.entries, id)
			purged++
		}
	}
	return purged
}

// RunCleanup calls Cleanup every interval until ctx is done
func (c *Coordinator) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Cleanup(); n > 0 {
				c.logger.Info("Optimistic: purged %d rolled back operations", n)
			}
		}
	}
}

func (c *Coordinator) snapshot(keep func(*domain.PendingOperation) bool) []domain.PendingOperation {
	c.mu.Lock()
	ops := make([]domain.PendingOperation, 0, len(c.entries))
	for _, e := range c.entries {
		if keep(&e.op) {
			op := e.op
			op.Original = e.op.Original.Clone()
			op.New = e.op.New.Clone()
			ops = append(ops, op)
		}
	}
	c.mu.Unlock()

	sort.Slice(ops, func(i, j int) bool {
		if !ops[i].Timestamp.Equal(ops[j].Timestamp) {
			return ops[i].Timestamp.Before(ops[j].Timestamp)
		}
		return ops[i].ID < ops[j].ID
	})
	return ops
}

type noopMetrics struct{}

func (noopMetrics) IncOptimisticOperation(string, string) {}

func failureTitle(kind domain.OperationKind) string {
	switch kind {
	case domain.OperationCreate:
		return "Reservation not created"
	case domain.OperationMove:
		return "Reservation not moved"
	case domain.OperationDelete:
		return "Reservation not deleted"
	default:
		return "Reservation not updated"
	}
}
