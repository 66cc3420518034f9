package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер отсутствует в каталоге
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrDuplicateRoom возвращается, когда источник отдал два номера с одним ID
	ErrDuplicateRoom = errors.New("rooms: duplicate room id")

	// ErrInternal возвращается при ошибке источника каталога
	ErrInternal = errors.New("rooms: internal error")
)
