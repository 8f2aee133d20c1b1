package logger

// Field is a structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// Client is the logging contract used across services so implementations
// can be swapped in tests.
type Client interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}
