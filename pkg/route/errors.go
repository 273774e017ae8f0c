package route

import (
	"errors"
	"fmt"
)

// Assembly error sentinels for errors.Is checks.
var (
	ErrMissingParameter       = errors.New("route: missing parameter")
	ErrInvalidOptionalNesting = errors.New("route: invalid optional nesting")
	ErrNotAssemblable         = errors.New("route: not assemblable")
)

// PatternError reports a malformed path template or regular expression.
// It is returned at construction time; a route that fails to compile is
// never partially usable.
type PatternError struct {
	// Template is the offending template or expression source.
	Template string

	// Pos is the byte offset of the problem within Template, or -1 when
	// the error has no single position.
	Pos int

	// Reason is a short description of what is wrong.
	Reason string

	// Err is the underlying error, if any (e.g. a regexp compile error).
	Err error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("route: invalid template %q at offset %d: %s", e.Template, e.Pos, e.Reason)
	}
	return fmt.Sprintf("route: invalid template %q: %s", e.Template, e.Reason)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// AssemblyKind classifies an AssemblyError.
type AssemblyKind int

const (
	// KindMissingParameter indicates a required parameter was not supplied.
	KindMissingParameter AssemblyKind = iota

	// KindInvalidOptionalNesting indicates a parameter inside a nested
	// optional group was supplied while a parameter of the enclosing group
	// was not; the enclosing group cannot be emitted.
	KindInvalidOptionalNesting

	// KindNotAssemblable indicates the route has no reverse template.
	KindNotAssemblable
)

// AssemblyError reports a failure to build a path from a route and a
// parameter set. It is recoverable by the caller and never affects router
// state.
type AssemblyError struct {
	// Route is the name of the route being assembled.
	Route string

	// Param is the parameter involved, when the kind concerns one.
	Param string

	// Kind classifies the failure.
	Kind AssemblyKind
}

// Error implements the error interface.
func (e *AssemblyError) Error() string {
	switch e.Kind {
	case KindMissingParameter:
		return fmt.Sprintf("route %q: missing parameter %q", e.Route, e.Param)
	case KindInvalidOptionalNesting:
		return fmt.Sprintf("route %q: parameter %q of an enclosing optional group is missing", e.Route, e.Param)
	case KindNotAssemblable:
		return fmt.Sprintf("route %q: not assemblable without a reverse template", e.Route)
	default:
		return fmt.Sprintf("route %q: assembly failed", e.Route)
	}
}

// Unwrap maps the error kind to its sentinel so that
// errors.Is(err, route.ErrMissingParameter) and friends work.
func (e *AssemblyError) Unwrap() error {
	switch e.Kind {
	case KindMissingParameter:
		return ErrMissingParameter
	case KindInvalidOptionalNesting:
		return ErrInvalidOptionalNesting
	case KindNotAssemblable:
		return ErrNotAssemblable
	default:
		return nil
	}
}
