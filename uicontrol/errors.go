package uicontrol

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a directive error.
type ErrorKind uint8

const (
	// SyntaxError: the directive does not match the directive grammar
	// (missing name, malformed parameter list, unknown kind or value type).
	SyntaxError ErrorKind = iota
	// ValidationError: the directive is well formed but a parameter is
	// missing, unknown, of the wrong type, or outside its allowed domain.
	ValidationError
	// CollisionError: the control name was already declared.
	CollisionError
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case ValidationError:
		return "validation error"
	case CollisionError:
		return "collision error"
	default:
		return "error"
	}
}

// SourceError represents an error with source location information.
type SourceError struct {
	Kind    ErrorKind
	Message string
	Span    Span
	Source  string // Original source code (for context display)
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Span.Start.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

// Line returns the source line the error points at, without its terminator.
// It returns false when the error has no source or no position.
func (e *SourceError) Line() (string, bool) {
	if e.Source == "" || e.Span.Start.Line == 0 {
		return "", false
	}

	lines := strings.Split(e.Source, "\n")
	lineNum := e.Span.Start.Line
	if lineNum < 1 || lineNum > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[lineNum-1], "\r"), true
}

// FormatWithContext returns the error message with source context.
// Shows the problematic line with a caret pointing to the error location.
func (e *SourceError) FormatWithContext() string {
	line, ok := e.Line()
	if !ok {
		return e.Error()
	}

	lineNum := e.Span.Start.Line
	runes := []rune(line)
	col := e.Span.Start.Column
	if col < 1 {
		col = 1
	}
	if col > len(runes)+1 {
		col = len(runes) + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", e.Kind, e.Message)
	fmt.Fprintf(&sb, "  --> line %d:%d\n", lineNum, col)
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", lineNum, line)
	fmt.Fprintf(&sb, "   | %s^\n", caretPadding(runes[:col-1]))

	return sb.String()
}

// caretPadding blanks prefix while keeping tabs so the caret lines up with
// the rendered source line.
func caretPadding(prefix []rune) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// NewSourceError creates a new SourceError.
func NewSourceError(kind ErrorKind, message string, span Span, source string) *SourceError {
	return &SourceError{
		Kind:    kind,
		Message: message,
		Span:    span,
		Source:  source,
	}
}

// NewSourceErrorf creates a new SourceError with formatted message.
func NewSourceErrorf(kind ErrorKind, span Span, source string, format string, args ...any) *SourceError {
	return &SourceError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
		Source:  source,
	}
}

// SourceErrors represents a list of source errors.
type SourceErrors []*SourceError

// Error implements the error interface.
func (el SourceErrors) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	if len(el) == 1 {
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
}

// FormatAll returns all errors formatted with context.
func (el SourceErrors) FormatAll() string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.FormatWithContext())
	}
	return sb.String()
}

// Add adds an error to the list.
func (el *SourceErrors) Add(err *SourceError) {
	*el = append(*el, err)
}

// AddError adds an error with the given kind, message and span.
func (el *SourceErrors) AddError(kind ErrorKind, message string, span Span, source string) {
	el.Add(NewSourceError(kind, message, span, source))
}

// Len returns the number of errors.
func (el SourceErrors) Len() int {
	return len(el)
}

// HasErrors returns true if there are any errors.
func (el SourceErrors) HasErrors() bool {
	return len(el) > 0
}

// OfKind returns the errors of the given kind, in source order.
func (el SourceErrors) OfKind(kind ErrorKind) SourceErrors {
	var out SourceErrors
	for _, e := range el {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
