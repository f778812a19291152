package logger

import (
	"os"
	"strings"
	"time"

	"github.com/andrewstalin/liberror"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init initializes the logger based on the given configuration. With
// structured set, events are emitted as JSON lines instead of going
// through the console writer.
func Init(debug, verbose, structured bool) {
	if structured {
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		log = zerolog.New(output).With().Timestamp().Logger()
	}

	SetLogLevel(WarnLevel) // Default log level

	if debug {
		SetLogLevel(DebugLevel)
	} else if verbose {
		SetLogLevel(InfoLevel)
	}
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// WithError logs an error message with the error's category, code and
// context attached as structured fields
func WithError(err liberror.Error) *LogEvent {
	return &LogEvent{log.Error().
		Str("category", err.Category()).
		Str("code", codeField(err.Code())).
		Str("context", err.Context()).
		Str("error_message", err.Error())}
}

// FatalWithError logs a fatal message with the error's fields attached
// and exits the program
func FatalWithError(err liberror.Error) *LogEvent {
	return &LogEvent{log.Fatal().
		Str("category", err.Category()).
		Str("code", codeField(err.Code())).
		Str("context", err.Context()).
		Str("error_message", err.Error())}
}

// Fatal logs a fatal message and exits the program
func Fatal() *LogEvent {
	return &LogEvent{log.Fatal()}
}

// codeField renders a code the way diagnostic messages do, 0x-prefixed
// uppercase hex.
func codeField(code liberror.Code) string {
	const hexDigits = "0123456789ABCDEF"

	var sb strings.Builder
	sb.WriteString("0x")

	for shift := 28; shift >= 0; shift -= 4 {
		sb.WriteByte(hexDigits[code>>uint(shift)&0x0F])
	}

	return sb.String()
}
