package optimistic

import (
	"context"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// Mutation one optimistic change: Apply runs immediately, Commit is awaited,
// Rollback restores the pre-Apply state if Commit fails.
type Mutation[T any] struct {
	Kind     domain.OperationKind
	Original *domain.Reservation
	New      *domain.Reservation
	Apply    func()
	Rollback func()
	Commit   func(ctx context.Context) (T, error)
}

// Result outcome of Execute
type Result[T any] struct {
	OperationID string
	Success     bool
	Data        T
	Err         error
}
