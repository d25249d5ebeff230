package notify

import "go.uber.org/zap"

// Severity classifies a notification event.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityUrgent  Severity = "urgent"
)

// Event is one reminder notification. How it is surfaced is up to the
// sink; the engine only produces events.
type Event struct {
	Title    string
	Body     string
	Severity Severity
}

// Notifier consumes reminder events.
type Notifier interface {
	Notify(Event)
}

// LogNotifier writes events to the structured log. Always wired so a
// headless run still surfaces reminders.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(e Event) {
	fields := []zap.Field{
		zap.String("body", e.Body),
		zap.String("severity", string(e.Severity)),
	}
	switch e.Severity {
	case SeverityUrgent, SeverityWarning:
		n.log.Warn(e.Title, fields...)
	default:
		n.log.Info(e.Title, fields...)
	}
}

// Multi fans one event out to several sinks.
type Multi []Notifier

func (m Multi) Notify(e Event) {
	for _, n := range m {
		n.Notify(e)
	}
}
