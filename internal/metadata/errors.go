package metadata

import (
	"fmt"
)

// MetadataError represents a structured error with file context.
// It includes the file path and, when known, the line/column of the problem.
type MetadataError struct {
	FilePath string // Path to the file with the error
	Line     int    // Line number (0 if unknown)
	Column   int    // Column number (0 if unknown)
	Message  string // Primary error message
	Err      error  // Underlying decoder error
}

// Error implements the error interface. The path is not repeated in the
// message because warnings already name the failing file.
func (e *MetadataError) Error() string {
	if e.Line > 0 {
		if e.Column > 0 {
			return fmt.Sprintf("%s (line %d, col %d)", e.Message, e.Line, e.Column)
		}
		return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
	}
	return e.Message
}

// Unwrap exposes the underlying decoder error to errors.Is / errors.As.
func (e *MetadataError) Unwrap() error {
	return e.Err
}
