package move_booking

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("move_booking: reservation not found")

	// ErrRoomNotFound возвращается, когда целевой номер не найден
	ErrRoomNotFound = errors.New("move_booking: room not found")

	// ErrCannotMove возвращается для бронирований, которые уже нельзя перенести
	ErrCannotMove = errors.New("move_booking: reservation cannot be moved")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_booking: invalid input data")

	// ErrStoreRejected возвращается, когда хранилище отклонило перенос (локальное состояние откачено)
	ErrStoreRejected = errors.New("move_booking: move was not saved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_booking: internal error")
)
