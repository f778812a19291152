package logger

import "github.com/andrewstalin/liberror"

// Logger defines the interface for logging operations.
type Logger interface {
	Debug() *LogEvent
	Info() *LogEvent
	Warn() *LogEvent
	Error() *LogEvent
	WithError(err liberror.Error) *LogEvent
	FatalWithError(err liberror.Error) *LogEvent
}
