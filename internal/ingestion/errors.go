package ingestion

import "fmt"

// InputError represents a failure to obtain the text to process.
type InputError struct {
	Source  Source
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("input error (%s): %s", e.Source, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
