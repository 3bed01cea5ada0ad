// Package clierror classifies the minifier's three error kinds and renders
// the one of them (parse errors) that gets a stderr message. Positions
// carried by the core are opaque values it never inspects, so unlike a
// compiler error with line/column context to render, this is a flat
// kind-plus-message shape: argument and internal errors exit 1 with no
// further output, only parse errors get a human-readable message.
package clierror

import (
	"fmt"
	"io"
)

// Kind is one of the three error kinds the CLI surfaces.
type Kind int

const (
	// Argument is a malformed CLI invocation: wrong flag combination,
	// missing or extra positional argument, unreadable input/output path.
	Argument Kind = iota
	// Parse is reported by the external parser (internal/jsparse).
	Parse
	// Internal is a contract violation inside the core: an unknown node
	// kind, a missing scope, or a map inconsistency.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Argument:
		return "argument error"
	case Parse:
		return "parse error"
	case Internal:
		return "internal error"
	default:
		return "error"
	}
}

// Error wraps an underlying error with the kind that determines its exit
// and reporting behavior.
type Error struct {
	Kind Kind
	Err  error
}

// NewArgument wraps err as an argument error.
func NewArgument(err error) *Error { return &Error{Kind: Argument, Err: err} }

// NewParse wraps err as a parse error.
func NewParse(err error) *Error { return &Error{Kind: Parse, Err: err} }

// NewInternal wraps err as an internal error.
func NewInternal(err error) *Error { return &Error{Kind: Internal, Err: err} }

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// ExitCode is always 1: every error kind in this pipeline shares the same
// exit code — the pipeline either completes or aborts, and there is only
// one abort status.
func (e *Error) ExitCode() int { return 1 }

// WriteMessage writes this error's stderr presentation. Only parse errors
// get one; argument and internal errors rely on the nonzero exit code
// alone.
func (e *Error) WriteMessage(w io.Writer) {
	if e.Kind != Parse {
		return
	}
	fmt.Fprintln(w, e.Err.Error())
}
