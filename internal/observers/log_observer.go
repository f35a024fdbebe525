package observers

import (
	"go.uber.org/zap"
)

// LogObserver пишет каждое событие в лог на уровне info.
// Уровень переданного логгера не понижается: при warn и выше событие не попадёт в лог.
type LogObserver struct {
	log *zap.Logger
}

func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{
		log: log.Named("LogObserver"),
	}
}

func (l *LogObserver) Update(eventType string, data map[string]any) error {
	l.log.Info("This is a Log event",
		zap.String("event_type", eventType),
		zap.Any("data", data),
	)
	return nil
}
