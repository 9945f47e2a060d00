// Package errors provides standardized error handling for tabpager.
// It defines the error kinds raised by the pager, the title strip and the
// configuration layer, plus helpers for creating, wrapping and classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Precondition error kinds
	IndexOutOfRange
	EmptyData
	CountMismatch
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// Common error constants for frequently occurring errors
var (
	ErrNoPages       = &ApplicationError{msg: "no pages supplied", kind: EmptyData}
	ErrNoTitles      = &ApplicationError{msg: "no titles supplied", kind: EmptyData}
	ErrCountMismatch = &ApplicationError{msg: "page count does not match title count", kind: CountMismatch}
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// IndexError reports an index outside [0, count-1] passed to an operation.
type IndexError struct {
	ApplicationError
	op    string
	index int
	count int
}

// NewIndexError creates a new index error for the named operation
func NewIndexError(op string, index, count int) *IndexError {
	return &IndexError{
		ApplicationError: ApplicationError{
			msg:  "index out of range",
			kind: IndexOutOfRange,
		},
		op:    op,
		index: index,
		count: count,
	}
}

// Error returns the index error message
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s: index %d not in [0, %d]", e.op, e.msg, e.index, e.count-1)
}

// Index returns the offending index
func (e *IndexError) Index() int {
	return e.index
}

// Count returns the number of valid indices
func (e *IndexError) Count() int {
	return e.count
}

// CheckIndex returns an IndexError when index is not a valid position in a
// sequence of count elements.
func CheckIndex(op string, index, count int) error {
	if index < 0 || index >= count {
		return NewIndexError(op, index, count)
	}
	return nil
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf walks err's chain and returns the first kind that is not Unknown.
// Context added by Wrap or Wrapf does not hide the kind of the cause.
func KindOf(err error) ErrorKind {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if k, ok := e.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
	}
	return Unknown
}

// IsIndexOutOfRange checks if the error is an index out of range error
func IsIndexOutOfRange(err error) bool {
	return KindOf(err) == IndexOutOfRange
}

// IsEmptyData checks if the error reports an empty page or title set
func IsEmptyData(err error) bool {
	return KindOf(err) == EmptyData
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
