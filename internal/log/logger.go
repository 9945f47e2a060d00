package log

import (
	"io"
	"os"

	"tabpager/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*logrus.Logger)

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithJSON switches to JSON-formatted lines.
func WithJSON() Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	}
}

// WithFile appends log lines to the named file. The file stays open for the
// life of the process.
func WithFile(path string) Option {
	return func(l *logrus.Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.Warnf("could not open log file %s: %v", path, err)
			return
		}
		l.SetOutput(f)
	}
}

// Logger is a thin wrapper around a logrus entry.
type Logger struct {
	entry *logrus.Entry
}

func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	base.SetLevel(logrus.DebugLevel)
	for _, opt := range opts {
		opt(base)
	}
	return &Logger{entry: logrus.NewEntry(base)}
}

// With returns a logger that attaches fields to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

func (l *Logger) Info(msg string)                          { l.entry.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l *Logger) Warn(msg string)                          { l.entry.Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l *Logger) Error(msg string)                         { l.entry.Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Debug logs only when debug output is enabled via SetDebug.
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message when debug output is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetOutput redirects the package logger, keeping its formatter.
func SetOutput(w io.Writer) {
	logger.entry.Logger.SetOutput(w)
}

func SetDebug(debug bool) {
	isDebug = debug
}

// DebugEnabled reports whether debug output is on. Hot paths check it before
// building log arguments.
func DebugEnabled() bool {
	return isDebug
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError attaches err and, for application errors, its kind.
func LogWithError(err error) *Logger {
	if err == nil {
		return logger
	}
	fields := []Field{F("error", err.Error())}
	if kind := errors.KindOf(err); kind != errors.Unknown {
		fields = append(fields, F("kind", int(kind)))
	}
	var cfgErr *errors.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Param() != "" {
		fields = append(fields, F("param", cfgErr.Param()))
	}
	var idxErr *errors.IndexError
	if errors.As(err, &idxErr) {
		fields = append(fields, F("index", idxErr.Index()), F("count", idxErr.Count()))
	}
	return logger.With(fields...)
}

func Info(format string, args ...interface{}) {
	logger.entry.Infof(format, args...)
}

// Infof logs a formatted message
func Infof(format string, args ...interface{}) {
	logger.entry.Infof(format, args...)
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	if isDebug {
		logger.entry.Debugf(msg+": %v", args...)
	}
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	if isDebug {
		logger.entry.Debugf(format, args...)
	}
}

// Error logs an error message with arguments
func Error(msg string, args ...interface{}) {
	logger.entry.Errorf(msg+": %v", args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.entry.Errorf(format, args...)
}

// Warn logs a warning message with arguments
func Warn(msg string, args ...interface{}) {
	logger.entry.Warnf(msg+": %v", args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.entry.Warnf(format, args...)
}
