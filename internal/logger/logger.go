// Package logger provides the structured progress logging of the benchmark.
// All log output goes to stderr so the result table on stdout stays clean.
package logger

// Logger is the logging interface used across the harness.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is a structured log field.
type Field struct {
	Key   string
	Value interface{}
}
