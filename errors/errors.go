package errors

import "fmt"

// ParseError wraps a specific error with context about where it occurred.
type ParseError struct {
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v (record: %v)", e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Define specific error types for better error handling
var (
	ErrInvalidFieldCount  = fmt.Errorf("invalid field count")
	ErrInvalidTimestamp   = fmt.Errorf("invalid timestamp")
	ErrInvalidAmount      = fmt.Errorf("invalid amount")
	ErrNegativeAmount     = fmt.Errorf("negative amount")
	ErrInvalidItemsCount  = fmt.Errorf("invalid items count")
	ErrNegativeItemsCount = fmt.Errorf("negative items count")
	ErrEmptyRecord        = fmt.Errorf("empty record")
)
