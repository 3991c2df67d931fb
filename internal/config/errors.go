package config

import "fmt"

// Error represents an unreadable or invalid configuration.
type Error struct {
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := "config error: " + e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}
