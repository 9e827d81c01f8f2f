// Package errors provides custom error types for the podium pipeline.
// These errors let callers tell data-integrity failures apart from policy
// violations and configuration problems with errors.Is and errors.As.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the podium pipeline
var (
	// ErrNotFound indicates that a required lookup key was absent
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSchemaMismatch indicates that a table lacks required columns
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrDuplicate indicates that a record was emitted twice where the
	// active policy forbids it
	ErrDuplicate = errors.New("duplicate")
)

// NotFoundError represents a required lookup key that is absent
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// SchemaError reports a table whose header lacks required columns
type SchemaError struct {
	Table   string
	Missing []string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s is missing required columns: %s", e.Table, strings.Join(e.Missing, ", "))
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(table string, missing []string) *SchemaError {
	return &SchemaError{Table: table, Missing: missing}
}

// DuplicateResultError is raised when the team pass emits the same
// athlete/event pair twice while duplicate removal is enabled.
type DuplicateResultError struct {
	AthleteCode string
	Event       string
}

// Error implements the error interface
func (e *DuplicateResultError) Error() string {
	return fmt.Sprintf("duplicate result for athlete %s in event %q during team pass", e.AthleteCode, e.Event)
}

// Is implements errors.Is support
func (e *DuplicateResultError) Is(target error) bool {
	return target == ErrDuplicate
}

// NewDuplicateResultError creates a new DuplicateResultError
func NewDuplicateResultError(athleteCode, event string) *DuplicateResultError {
	return &DuplicateResultError{AthleteCode: athleteCode, Event: event}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// MergeError represents a failure inside one pipeline stage
type MergeError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *MergeError) Error() string {
	return fmt.Sprintf("merge failed during %s: %v", e.Stage, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError creates a new MergeError
func NewMergeError(stage string, err error) *MergeError {
	return &MergeError{Stage: stage, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml", "id", "date", etc.
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSchemaMismatch checks if an error reports missing columns
func IsSchemaMismatch(err error) bool {
	return errors.Is(err, ErrSchemaMismatch)
}

// IsDuplicate checks if an error is a duplicate result error
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapStage wraps an error as a MergeError for the named stage
func WrapStage(stage string, err error) error {
	if err == nil {
		return nil
	}
	return NewMergeError(stage, err)
}
