package update_booking

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_booking: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrStoreRejected возвращается, когда хранилище отклонило изменение (локальное состояние откачено)
	ErrStoreRejected = errors.New("update_booking: update was not saved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
