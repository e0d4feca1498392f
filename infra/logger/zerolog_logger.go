package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls output, level and format of loggers built by this package.
type Options struct {
	// Writer receives log events. Nil means os.Stderr.
	Writer io.Writer
	// Level is a zerolog level name such as "debug" or "warn".
	Level string
	// Console selects the human readable zerolog.ConsoleWriter.
	Console bool
}

var (
	mu       sync.RWMutex
	defaults = Options{Level: "warn"}
)

// Configure sets the options used by New. The APP_ENV=dev environment variable
// forces console output.
func Configure(opts Options) {
	mu.Lock()
	defaults = opts
	mu.Unlock()
}

func currentOptions() Options {
	mu.RLock()
	defer mu.RUnlock()
	return defaults
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger. All events include the provided
// component field. Unknown level names fall back to warn.
func NewZerologLogger(component string, opts Options) Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		lvl = zerolog.WarnLevel
	}
	out := opts.Writer
	if opts.Console || strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: opts.Writer, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Infow(msg string, fields map[string]any) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
