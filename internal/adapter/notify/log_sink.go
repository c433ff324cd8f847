package notify

import (
	"github.com/rs/zerolog"
)

// LogSink implements ports.NotificationSink on the structured logger. The
// production deployment swaps in the platform's notifier; the engine only
// depends on the port.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink creates a logger-backed notification sink.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Step reports phase progress.
func (s *LogSink) Step(title string, percent int) {
	s.log.Info().Str("title", title).Int("percent", percent).Msg("progress")
}

// Success reports a completed request.
func (s *LogSink) Success(title, message string) {
	s.log.Info().Str("title", title).Msg(message)
}

// Error reports a terminal failure for the attempt.
func (s *LogSink) Error(title, message string) {
	s.log.Error().Str("title", title).Msg(message)
}

// Warn reports an operator-visible inconsistency.
func (s *LogSink) Warn(title, message string) {
	s.log.Warn().Str("title", title).Msg(message)
}
