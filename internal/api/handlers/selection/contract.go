package selection

import rangeSelection "github.com/sokol-matija/hotel-inventory-sub003/internal/selection"

// Sessions машины выбора дат по операторам
type Sessions interface {
	GetOrCreate(operatorID string) *rangeSelection.Machine
	Delete(operatorID string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
