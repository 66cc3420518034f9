package operations

import "github.com/sokol-matija/hotel-inventory-sub003/internal/domain"

// Coordinator реестр оптимистичных операций
type Coordinator interface {
	Operations() []domain.PendingOperation
	PendingOperations() []domain.PendingOperation
	Statistics() domain.OperationStats
	ForceRollback(id string) error
	RollbackAllPending() int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
