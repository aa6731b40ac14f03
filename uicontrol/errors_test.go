package uicontrol

import (
	"errors"
	"strings"
	"testing"
)

func TestSourceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SourceError
		expected string
	}{
		{
			name: "with position",
			err: &SourceError{
				Message: "unknown control kind \"knob\"",
				Span: Span{
					Start: Position{Line: 5, Column: 10},
				},
			},
			expected: "5:10: unknown control kind \"knob\"",
		},
		{
			name: "without position",
			err: &SourceError{
				Message: "generic error",
				Span:    Span{},
			},
			expected: "generic error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSourceError_FormatWithContext(t *testing.T) {
	source := `void main() {}
#uicontrol float brightness slider(min=0, max=1, default=2)
`

	err := &SourceError{
		Kind:    ValidationError,
		Message: "slider default 2 is outside [0, 1]",
		Span: Span{
			Start: Position{Line: 2, Column: 58},
		},
		Source: source,
	}

	formatted := err.FormatWithContext()

	if !strings.Contains(formatted, "validation error: slider default 2 is outside [0, 1]") {
		t.Error("formatted error should contain kind and message")
	}
	if !strings.Contains(formatted, "line 2:58") {
		t.Error("formatted error should contain line:column")
	}
	if !strings.Contains(formatted, "#uicontrol float brightness") {
		t.Error("formatted error should contain source line")
	}
	if !strings.Contains(formatted, strings.Repeat(" ", 57)+"^") {
		t.Errorf("caret should sit under column 58:\n%s", formatted)
	}
}

func TestSourceError_FormatWithContext_Tabs(t *testing.T) {
	err := &SourceError{
		Message: "bad",
		Span:    Span{Start: Position{Line: 1, Column: 3}},
		Source:  "\t\tx",
	}

	formatted := err.FormatWithContext()
	if !strings.Contains(formatted, "   | \t\t^\n") {
		t.Errorf("caret padding should keep tabs, got:\n%q", formatted)
	}
}

func TestSourceError_FormatWithContext_NoSource(t *testing.T) {
	err := &SourceError{
		Message: "error without source",
		Span: Span{
			Start: Position{Line: 1, Column: 1},
		},
		Source: "",
	}

	formatted := err.FormatWithContext()
	if formatted != "1:1: error without source" {
		t.Errorf("expected simple format without source, got: %q", formatted)
	}
}

func TestSourceError_Line(t *testing.T) {
	err := &SourceError{
		Span:   Span{Start: Position{Line: 2, Column: 1}},
		Source: "a\r\nb\r\nc",
	}
	line, ok := err.Line()
	if !ok || line != "b" {
		t.Errorf("Line() = %q, %v; want \"b\", true", line, ok)
	}

	err.Span.Start.Line = 9
	if _, ok := err.Line(); ok {
		t.Error("Line() should fail for an out of range line")
	}
}

func TestSourceErrors_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   SourceErrors
		expected string
	}{
		{
			name:     "empty",
			errors:   SourceErrors{},
			expected: "no errors",
		},
		{
			name: "single",
			errors: SourceErrors{
				{Message: "first error", Span: Span{Start: Position{Line: 1, Column: 1}}},
			},
			expected: "1:1: first error",
		},
		{
			name: "multiple",
			errors: SourceErrors{
				{Message: "first error", Span: Span{Start: Position{Line: 1, Column: 1}}},
				{Message: "second error", Span: Span{Start: Position{Line: 2, Column: 5}}},
				{Message: "third error", Span: Span{Start: Position{Line: 3, Column: 10}}},
			},
			expected: "1:1: first error (and 2 more errors)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.errors.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSourceErrors_Operations(t *testing.T) {
	var errs SourceErrors

	if errs.HasErrors() {
		t.Error("empty list should not have errors")
	}
	if errs.Len() != 0 {
		t.Error("empty list should have length 0")
	}

	errs.AddError(SyntaxError, "error 1", Span{Start: Position{Line: 1, Column: 1}}, "")
	if !errs.HasErrors() {
		t.Error("list with error should have errors")
	}
	if errs.Len() != 1 {
		t.Errorf("expected length 1, got %d", errs.Len())
	}

	errs.Add(NewSourceError(CollisionError, "error 2", Span{Start: Position{Line: 2, Column: 1}}, ""))
	if errs.Len() != 2 {
		t.Errorf("expected length 2, got %d", errs.Len())
	}

	if got := errs.OfKind(CollisionError); len(got) != 1 || got[0].Message != "error 2" {
		t.Errorf("OfKind(CollisionError) = %v", got)
	}
}

func TestSourceErrors_FormatAll(t *testing.T) {
	source := "#uicontrol float a knob\n#uicontrol float b"
	errs := SourceErrors{
		NewSourceErrorf(SyntaxError, Span{Start: Position{Line: 1, Column: 20}}, source, "unknown control kind %q", "knob"),
		NewSourceErrorf(SyntaxError, Span{Start: Position{Line: 2, Column: 19}}, source, "expected control name"),
	}

	formatted := errs.FormatAll()
	if strings.Count(formatted, "syntax error:") != 2 {
		t.Errorf("expected two formatted errors, got:\n%s", formatted)
	}
}

func TestSourceError_As(t *testing.T) {
	var err error = SourceErrors{NewSourceError(ValidationError, "x", Span{}, "")}
	var list SourceErrors
	if !errors.As(err, &list) || list[0].Kind != ValidationError {
		t.Errorf("errors.As should recover SourceErrors, got %v", err)
	}
}
