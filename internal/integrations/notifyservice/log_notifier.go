package notifyservice

// LogNotifier пишет уведомления в лог, когда вебхук не настроен
type LogNotifier struct {
	log Logger
}

// NewLogNotifier создает LogNotifier
func NewLogNotifier(log Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(title, message string) { n.log.Info("[notify] %s: %s", title, message) }
func (n *LogNotifier) Error(title, message string)   { n.log.Error("[notify] %s: %s", title, message) }
func (n *LogNotifier) Warning(title, message string) { n.log.Warn("[notify] %s: %s", title, message) }
