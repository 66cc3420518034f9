package pricing

import "errors"

var (
	// ErrInvalidStayLength возвращается, когда выезд не позже заезда (меньше одной ночи)
	ErrInvalidStayLength = errors.New("pricing: stay must be at least one night")

	// ErrInvalidOccupancy возвращается при отсутствии взрослых гостей
	ErrInvalidOccupancy = errors.New("pricing: at least one adult is required")

	// ErrInvalidCharges возвращается при отрицательных дополнительных начислениях
	ErrInvalidCharges = errors.New("pricing: additional charges must not be negative")

	// ErrRoomRequired возвращается, когда номер не передан
	ErrRoomRequired = errors.New("pricing: room is required")

	// ErrRateNotFound возвращается, когда для периода нет тарифа номера
	ErrRateNotFound = errors.New("pricing: no rate for seasonal period")

	// ErrSeasonLookup возвращается при ошибке классификатора сезонов
	ErrSeasonLookup = errors.New("pricing: seasonal period lookup failed")

	// ErrUnknownTier возвращается для неизвестного ценового уровня
	ErrUnknownTier = errors.New("pricing: unknown pricing tier")

	// ErrInvalidTier возвращается для отрицательного коэффициента уровня
	ErrInvalidTier = errors.New("pricing: tier factor must not be negative")
)
