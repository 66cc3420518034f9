package validate_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер черновика отсутствует в каталоге
	ErrRoomNotFound = errors.New("validate_booking: room not found")

	// ErrInvalidInput возвращается, когда черновик не передан
	ErrInvalidInput = errors.New("validate_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_booking: internal error")
)
