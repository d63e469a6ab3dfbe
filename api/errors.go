package api

import "fmt"

// ErrConfiguration indicates an invalid or unrecognized configuration option value
type ErrConfiguration struct {
	Reason string
}

// Error is the error interface impl.
func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// MakeErrConfiguration is a factory method
func MakeErrConfiguration(format string, args ...interface{}) *ErrConfiguration {
	return &ErrConfiguration{Reason: fmt.Sprintf(format, args...)}
}

// ErrInvalidOrder indicates a requested order outside the configured bounds
type ErrInvalidOrder struct {
	Reason string
}

// Error is the error interface impl.
func (e *ErrInvalidOrder) Error() string {
	return fmt.Sprintf("invalid order: %s", e.Reason)
}

// MakeErrInvalidOrder is a factory method
func MakeErrInvalidOrder(format string, args ...interface{}) *ErrInvalidOrder {
	return &ErrInvalidOrder{Reason: fmt.Sprintf(format, args...)}
}

// ErrOutOfRange indicates a step index beyond the available price series
type ErrOutOfRange struct {
	Step int
	Len  int
}

// Error is the error interface impl.
func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("step %d is out of range of the price series of length %d", e.Step, e.Len)
}

// MakeErrOutOfRange is a factory method
func MakeErrOutOfRange(step int, seriesLen int) *ErrOutOfRange {
	return &ErrOutOfRange{Step: step, Len: seriesLen}
}

// ErrUnconfiguredExchange indicates an operation that needs a price series before one was set
type ErrUnconfiguredExchange struct {
	Missing string
}

// Error is the error interface impl.
func (e *ErrUnconfiguredExchange) Error() string {
	return fmt.Sprintf("exchange is not fully configured, missing: %s", e.Missing)
}

// MakeErrUnconfiguredExchange is a factory method
func MakeErrUnconfiguredExchange(missing string) *ErrUnconfiguredExchange {
	return &ErrUnconfiguredExchange{Missing: missing}
}
