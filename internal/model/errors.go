package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// FieldError carries the user-facing message for a rejected input field.
// The wire shape {"errors":[{"msg":...}]} is fixed for client compatibility.
type FieldError struct {
	Msg string `json:"msg"`
}

// ValidationError aggregates one or more field rejections. It unwraps to
// ErrValidation so handlers can classify it with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation: %s", e.Fields[0].Msg)
	}
	return fmt.Sprintf("validation: %d fields rejected", len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError from messages.
func NewValidationError(msgs ...string) *ValidationError {
	fields := make([]FieldError, 0, len(msgs))
	for _, m := range msgs {
		fields = append(fields, FieldError{Msg: m})
	}
	return &ValidationError{Fields: fields}
}
