package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger provides structured logging scoped by component name
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

type Config struct {
	EnableLogging  bool
	UseJSONLogging bool
	Level          LogLevel
	Output         io.Writer
}

func DefaultConfig() Config {
	return Config{
		EnableLogging:  true,
		UseJSONLogging: false,
		Level:          InfoLevel,
		Output:         os.Stdout,
	}
}

func ProductionConfig() Config {
	return Config{
		EnableLogging:  true,
		UseJSONLogging: true,
		Level:          ErrorLevel,
		Output:         os.Stderr,
	}
}

// New builds the logger described by config. A disabled config yields a NoOpLogger.
func New(config Config) Logger {
	if !config.EnableLogging {
		return NoOpLogger{}
	}

	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	if !config.UseJSONLogging {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: true}
	}

	return NewZerolog(out, config.Level.zerologLevel())
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
