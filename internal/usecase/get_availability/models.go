package get_availability

import "time"

// DefaultRangeDays период по умолчанию, если to не указан
const DefaultRangeDays = 31

// Request модель запроса на получение занятости номера
type Request struct {
	RoomID  int64
	From    time.Time  // нулевое значение = сегодня
	To      time.Time  // нулевое значение = From + DefaultRangeDays
	CheckIn *time.Time // если указан, считается максимальная дата выезда
}

// Response занятость номера за период
type Response struct {
	RoomID        int64
	From          time.Time
	To            time.Time
	OccupiedDates []time.Time
	CheckIn       *time.Time
	CheckInFree   *bool      // свободен ли день заезда
	MaxCheckout   *time.Time // nil = без ограничения
}
