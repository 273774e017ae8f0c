package errors

import (
	"errors"
	"fmt"

	"github.com/pathway-dev/pathway/pkg/route"
	"github.com/pathway-dev/pathway/pkg/router"
)

// Category represents the type of error.
type Category string

const (
	CategoryPattern      Category = "pattern"
	CategoryRegistration Category = "registration"
	CategoryAssembly     Category = "assembly"
	CategoryConfig       Category = "config"
	CategoryCLI          Category = "cli"
)

// Location points into a route template or expression.
type Location struct {
	Template string
	Pos      int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Pos >= 0 {
		return fmt.Sprintf("%q at offset %d", l.Template, l.Pos)
	}
	return fmt.Sprintf("%q", l.Template)
}

// PathwayError is a structured error with template location, suggestions,
// and documentation.
type PathwayError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (pattern, assembly, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the template position where the error occurred.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is a template showing the correct form.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *PathwayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *PathwayError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a template position to the error.
func (e *PathwayError) WithLocation(template string, pos int) *PathwayError {
	e.Location = &Location{Template: template, Pos: pos}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *PathwayError) WithSuggestion(s string) *PathwayError {
	e.Suggestion = s
	return e
}

// WithExample adds an example template to the error.
func (e *PathwayError) WithExample(ex string) *PathwayError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *PathwayError) WithDetail(d string) *PathwayError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *PathwayError) Wrap(err error) *PathwayError {
	e.Wrapped = err
	return e
}

// New creates a PathwayError from a registered error code.
func New(code string) *PathwayError {
	template, ok := registry[code]
	if !ok {
		return &PathwayError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &PathwayError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new PathwayError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *PathwayError {
	return &PathwayError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a PathwayError.
func FromError(err error, code string) *PathwayError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PathwayError); ok {
		return pe
	}
	return New(code).Wrap(err)
}

// FromRouting maps errors from the route and router packages onto their
// registered codes, attaching the template location where one is known.
// Unrecognized errors come back as a plain CLI-category wrapper.
func FromRouting(err error) *PathwayError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PathwayError); ok {
		return pe
	}

	var perr *route.PatternError
	if errors.As(err, &perr) {
		return New("E001").Wrap(err).
			WithDetail(perr.Reason).
			WithLocation(perr.Template, perr.Pos)
	}

	var aerr *route.AssemblyError
	if errors.As(err, &aerr) {
		var pe *PathwayError
		switch aerr.Kind {
		case route.KindMissingParameter:
			pe = New("E040").WithSuggestion(
				fmt.Sprintf("supply a value for %q or give the route a default", aerr.Param))
		case route.KindInvalidOptionalNesting:
			pe = New("E041").WithSuggestion(
				fmt.Sprintf("also supply %q, or move the nested group out of its parent", aerr.Param))
		default:
			pe = New("E042")
		}
		return pe.Wrap(err)
	}

	var dup *router.DuplicateRouteNameError
	if errors.As(err, &dup) {
		return New("E020").Wrap(err).
			WithDetail(fmt.Sprintf("the name %q is already registered", dup.Name))
	}

	var nf *router.RouteNotFoundError
	if errors.As(err, &nf) {
		return New("E021").Wrap(err).
			WithDetail(fmt.Sprintf("no route is registered under %q", nf.Name))
	}

	return Newf(CategoryCLI, "%v", err).Wrap(err)
}
