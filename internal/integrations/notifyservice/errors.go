package notifyservice

import "errors"

var (
	// ErrRateLimited возвращается, когда уведомление отброшено ограничителем
	ErrRateLimited = errors.New("notifyservice: notification rate limit exceeded")

	// ErrInvalidResponse возвращается при неожиданном ответе вебхука
	ErrInvalidResponse = errors.New("notifyservice: invalid response from webhook")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice: internal error")
)
