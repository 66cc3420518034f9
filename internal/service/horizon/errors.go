package horizon

import "errors"

var (
	// ErrPendingOperations перезагрузка пропущена, есть незавершенные операции
	ErrPendingOperations = errors.New("horizon: optimistic operations are pending")

	// ErrLoadFailed ошибка чтения бронирований из хранилища
	ErrLoadFailed = errors.New("horizon: failed to load reservations")
)
