package logger

import (
	"os"

	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
)

// CreateLogger builds the service logger: ECS formatted JSON on stdout, level from LOG_LEVEL
func CreateLogger(serviceName string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&ecslogrus.Formatter{})
	l.AddHook(newHook(serviceName))

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}

// ExtraFieldHook stamps every entry with the service name
type ExtraFieldHook struct {
	service string
}

func newHook(serviceName string) *ExtraFieldHook {
	return &ExtraFieldHook{service: serviceName}
}

func (h *ExtraFieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *ExtraFieldHook) Fire(e *logrus.Entry) error {
	e.Data["service.name"] = h.service
	return nil
}
