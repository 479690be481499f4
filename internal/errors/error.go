package errors

import (
	"errors"
	"fmt"
)

// Category is the kind of failure.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryStorage Category = "storage"
	CategoryRuntime Category = "runtime"
	CategoryCLI     Category = "cli"
)

// Error is a structured error with an explanation and a hint.
type Error struct {
	// Code is a unique identifier such as "T001".
	Code string

	// Category is the kind of failure.
	Category Category

	// Message is a one-line description.
	Message string

	// Detail is a longer explanation.
	Detail string

	// Suggestion is a hint on how to fix the problem.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithDetail sets the detailed explanation.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithDetailf sets a formatted detailed explanation.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion sets the fix hint.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap sets the underlying error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered code. Unknown codes get a generic
// message.
func New(code string) *Error {
	tmpl, ok := registry[code]
	if !ok {
		return &Error{Code: code, Message: "Unknown error"}
	}
	return &Error{
		Code:     code,
		Category: tmpl.Category,
		Message:  tmpl.Message,
		Detail:   tmpl.Detail,
	}
}

// Newf creates an uncoded Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// From returns err as an *Error, wrapping it under code when it is not one
// already. It returns nil for a nil err.
func From(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(code).Wrap(err)
}

// Is reports whether err is or wraps an *Error with the given code.
func Is(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

type template struct {
	Category Category
	Message  string
	Detail   string
}

var registry = map[string]template{
	// Configuration
	"T001": {CategoryConfig, "Invalid configuration file", "The configuration file could not be read or is not valid JSON."},
	"T002": {CategoryConfig, "Invalid listen address", "The server address must have the form host:port."},
	"T003": {CategoryConfig, "Invalid log level", "Valid levels are debug, info, warn and error."},
	"T004": {CategoryConfig, "Invalid log format", "Valid formats are text and json."},
	"T005": {CategoryConfig, "Missing data file", "A data file path is required to store matches."},

	// Storage
	"T010": {CategoryStorage, "Data file unreadable", "The data file exists but could not be read or decoded."},
	"T011": {CategoryStorage, "Data file not writable", "Matches could not be written to the data file."},

	// Runtime
	"T020": {CategoryRuntime, "Mount target not found", "The page has no element matching the mount selector."},
	"T021": {CategoryRuntime, "Server failed", "The HTTP server stopped with an error."},

	// CLI
	"T030": {CategoryCLI, "Unknown sort key", "Statistics can be sorted by total, wins or losses."},
	"T031": {CategoryCLI, "Unknown output format", "Use json or ndjson."},
}
