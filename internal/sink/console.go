package sink

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ConsoleConfig configures the console sink.
type ConsoleConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ConsoleSink writes every record to a logrus logger at info level,
// grounded on the teacher's console reporter (plugins/reporter/console).
type ConsoleSink struct {
	log *logrus.Logger
}

// NewConsoleSink returns a sink that writes through log (or through a
// fresh default logger if log is nil).
func NewConsoleSink(log *logrus.Logger) *ConsoleSink {
	if log == nil {
		log = logrus.New()
	}
	return &ConsoleSink{log: log}
}

// Write prints record as a single log line.
func (s *ConsoleSink) Write(_ context.Context, record string) error {
	s.log.Info(record)
	return nil
}

// Close is a no-op: stdout needs no teardown.
func (s *ConsoleSink) Close() error { return nil }

// String identifies the sink in logs/diagnostics.
func (s *ConsoleSink) String() string { return "console" }
