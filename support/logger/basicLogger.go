package logger

import "log"

// basicLogger logs via the standard library logger
type basicLogger struct {
}

// ensure it implements Logger
var _ Logger = &basicLogger{}

// MakeBasicLogger is the factory method
func MakeBasicLogger() Logger {
	return &basicLogger{}
}

// Info impl.
func (l *basicLogger) Info(msg string) {
	log.Println(msg)
}

// Infof impl.
func (l *basicLogger) Infof(msg string, args ...interface{}) {
	log.Printf(msg, args...)
}

// Error impl.
func (l *basicLogger) Error(msg string) {
	log.Println("[error] " + msg)
}

// Errorf impl.
func (l *basicLogger) Errorf(msg string, args ...interface{}) {
	log.Printf("[error] "+msg, args...)
}
