package notifyservice

import "time"

// Level уровень уведомления
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Notification тело запроса к вебхуку
type Notification struct {
	Level   Level     `json:"level"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Source  string    `json:"source"`
	SentAt  time.Time `json:"sentAt"`
}
