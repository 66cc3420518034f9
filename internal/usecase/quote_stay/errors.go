package quote_stay

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("quote_stay: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_stay: invalid input data")

	// ErrUnknownTier возвращается для неизвестного ценового уровня
	ErrUnknownTier = errors.New("quote_stay: unknown pricing tier")

	// ErrPricing возвращается, когда цену нельзя рассчитать (нет тарифа на сезон и т.п.)
	ErrPricing = errors.New("quote_stay: price cannot be calculated")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_stay: internal error")
)
