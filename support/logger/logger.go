package logger

// Logger is the common logging interface used across the codebase
type Logger interface {
	// Info logs the message on the INFO level
	Info(msg string)

	// Infof formats and logs the message on the INFO level
	Infof(msg string, args ...interface{})

	// Error logs the message on the ERROR level
	Error(msg string)

	// Errorf formats and logs the message on the ERROR level
	Errorf(msg string, args ...interface{})
}
