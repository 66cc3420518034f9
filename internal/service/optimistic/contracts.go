package optimistic

// Notifier is the operator notification channel; calls are fire-and-forget
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
	Warning(title, message string)
}

// Metrics counts finished operations
type Metrics interface {
	IncOptimisticOperation(kind, status string)
}

// Logger is the printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
