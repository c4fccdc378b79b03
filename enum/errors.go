package enum

import (
	"errors"
	"fmt"
	"strings"
)

// Construction error kinds. Every error returned by New wraps exactly one of these.
var (
	ErrInvalidKeyFieldName = errors.New("invalid key field name")
	ErrMissingKeyValue     = errors.New("missing key value")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrInconsistentShape   = errors.New("inconsistent value shape")
	ErrMixedKeyKinds       = errors.New("mixed key kinds")
	ErrUnsupportedPayload  = errors.New("unsupported payload")
	ErrDuplicateName       = errors.New("duplicate entry name")
	ErrInvalidName         = errors.New("invalid name")
)

// ErrUnknownMethod is returned by Call when no method or accessor has the given name
var ErrUnknownMethod = errors.New("unknown method")

// ConstructionError describes why New refused a Definition
type ConstructionError struct {
	Enum     string // Type name of the enum being built
	Entry    string // Entry that triggered the failure, if any
	Previous string // Entry that already holds the conflicting key or name
	Detail   string // Human readable specifics
	Err      error  // One of the Err* sentinels
}

// Error implements the error interface
func (e *ConstructionError) Error() string {
	var msg strings.Builder

	if e.Enum != "" {
		msg.WriteString(fmt.Sprintf("enum %s: ", e.Enum))
	} else {
		msg.WriteString("enum: ")
	}
	msg.WriteString(e.Err.Error())

	if e.Detail != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Detail)
	}

	return msg.String()
}

// Unwrap returns the sentinel error for errors.Is
func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func constructionErr(enumName string, err error, format string, args ...any) *ConstructionError {
	return &ConstructionError{
		Enum:   enumName,
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
	}
}
