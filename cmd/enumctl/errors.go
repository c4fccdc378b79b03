package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/arthur-debert/enumerated/catalog"
	"github.com/arthur-debert/enumerated/enum"
	"github.com/arthur-debert/enumerated/loader"
)

// CLIError represents a user-friendly CLI error with context and suggestions
type CLIError struct {
	Operation   string   // The operation that failed (e.g., "validate", "lookup")
	Cause       string   // The underlying cause (e.g., "duplicate key")
	Details     string   // Additional technical details
	Suggestions []string // Helpful suggestions for the user
	Underlying  error    // Original error for debugging
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var msg strings.Builder

	if e.Operation != "" {
		msg.WriteString(fmt.Sprintf("Failed to %s", e.Operation))
	} else {
		msg.WriteString("Operation failed")
	}

	if e.Cause != "" {
		msg.WriteString(fmt.Sprintf(": %s", e.Cause))
	}

	if e.Details != "" {
		msg.WriteString(fmt.Sprintf(" (%s)", e.Details))
	}

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n\nSuggestions:")
		for i, suggestion := range e.Suggestions {
			msg.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return msg.String()
}

// Unwrap returns the underlying error for error chain compatibility
func (e *CLIError) Unwrap() error {
	return e.Underlying
}

// NewValidationError creates an error for invalid flag or argument values
func NewValidationError(operation, field, value string, suggestions ...string) *CLIError {
	return &CLIError{
		Operation:   operation,
		Cause:       fmt.Sprintf("invalid %s: %q", field, value),
		Suggestions: suggestions,
	}
}

// NewNotFoundError creates an error for missing values
func NewNotFoundError(operation, resource, key string, suggestions ...string) *CLIError {
	return &CLIError{
		Operation:   operation,
		Cause:       fmt.Sprintf("%s %q not found", resource, key),
		Suggestions: suggestions,
	}
}

// NewDefinitionError creates an error for a definition file that cannot be
// loaded, describing the construction failure in user terms
func NewDefinitionError(operation string, underlying error, suggestions ...string) *CLIError {
	cause := "invalid definition"

	switch {
	case underlying == nil:
	case errors.Is(underlying, fs.ErrNotExist):
		cause = "definition file not found"
		suggestions = append(suggestions, CommonSuggestions.CheckPath)
	case errors.Is(underlying, loader.ErrLockUnavailable):
		cause = "definition file is locked by another process"
		suggestions = append(suggestions, CommonSuggestions.RaiseTimeout)
	case errors.Is(underlying, enum.ErrDuplicateKey):
		cause = "duplicate key"
		suggestions = append(suggestions, "Give every value a distinct key")
	case errors.Is(underlying, enum.ErrMissingKeyValue):
		cause = "missing key"
		suggestions = append(suggestions, "Set the key field on every structured value, or use primitive values")
	case errors.Is(underlying, enum.ErrInconsistentShape):
		cause = "values mix structured and primitive entries"
		suggestions = append(suggestions, "Use either `value` or `fields` for all values")
	case errors.Is(underlying, enum.ErrInvalidKeyFieldName):
		cause = "invalid key or label field name"
		suggestions = append(suggestions, "Field names must be identifiers such as stepTypeId")
	case errors.Is(underlying, catalog.ErrAlreadyRegistered):
		cause = "type name declared by more than one file"
	case strings.Contains(underlying.Error(), "no format registered"):
		cause = "unsupported file extension"
		suggestions = append(suggestions, CommonSuggestions.CheckFormat)
	}

	details := ""
	if underlying != nil {
		details = underlying.Error()
	}

	return &CLIError{
		Operation:   operation,
		Cause:       cause,
		Details:     details,
		Suggestions: suggestions,
		Underlying:  underlying,
	}
}

// WrapError wraps an existing error with CLI-friendly context
func WrapError(operation string, err error, suggestions ...string) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Operation == "" {
			cliErr.Operation = operation
		}
		return cliErr
	}

	return NewDefinitionError(operation, err, suggestions...)
}

// Common error messages and suggestions
var (
	CommonSuggestions = struct {
		CheckPath    string
		CheckFormat  string
		CheckKey     string
		CheckConfig  string
		RaiseTimeout string
		RunHelp      string
	}{
		CheckPath:    "Verify the definition file path",
		CheckFormat:  "Use a .json, .yaml, .yml or .toml file, or pass --input-format",
		CheckKey:     "Run 'enumctl show FILE' to list the keys",
		CheckConfig:  "Check your configuration file or ENUMCTL_* environment variables",
		RaiseTimeout: "Retry, or raise --lock-timeout",
		RunHelp:      "Run command with --help for usage information",
	}
)
