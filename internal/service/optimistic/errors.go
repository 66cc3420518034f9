package optimistic

import "errors"

var (
	// ErrOperationNotFound is returned for ids missing from the registry
	ErrOperationNotFound = errors.New("optimistic: operation not found")

	// ErrOperationNotPending is returned when the operation has already finished
	ErrOperationNotPending = errors.New("optimistic: operation is not pending")

	// ErrCommitPanic wraps a panic raised by the store call
	ErrCommitPanic = errors.New("optimistic: commit panicked")

	// ErrNoCommit is returned for a mutation without a store call
	ErrNoCommit = errors.New("optimistic: mutation has no commit function")
)
