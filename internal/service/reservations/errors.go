package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrCannotMove возвращается для бронирований, которые уже нельзя перенести
	ErrCannotMove = errors.New("reservations: reservation cannot be moved")

	// ErrCommitFailed возвращается, когда хранилище отклонило изменение (локальное состояние откачено)
	ErrCommitFailed = errors.New("reservations: store rejected the change")
)
