package content

import "fmt"

// LoadError represents an error loading or validating the content file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("content load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
