package presenter

import (
	"github.com/rs/zerolog"
)

// LogSink presenter: renders messages through a structured logger instead of
// the console. Useful when the desk runs inside a service that already ships
// logs somewhere.
type LogSink struct {
	logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (p *LogSink) Display(message string) {
	p.logger.Info().Str("component", "circulation").Msg(message)
}
