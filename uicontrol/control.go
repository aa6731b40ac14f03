package uicontrol

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Control is a validated control descriptor.
//
// The set of implementations is closed: *Slider, *Color and *Checkbox.
// Use a type switch to reach the kind-specific parameters.
type Control interface {
	// ControlName returns the shader identifier the control binds to.
	ControlName() string
	// Kind returns the UI flavor of the control.
	Kind() Kind
	// Type returns the shader value type of the control.
	Type() ValueType
	// Pos returns the span of the declaring directive.
	Pos() Span

	fields() []field
}

// field is one named parameter of a control, in output order.
type field struct {
	Key   string
	Value any
}

// Slider is a numeric control bounded by [Min, Max].
type Slider struct {
	Name      string
	ValueType ValueType
	Min       float64
	Max       float64
	Default   float64
	Step      float64
	Span      Span
}

func (s *Slider) ControlName() string { return s.Name }
func (s *Slider) Kind() Kind          { return KindSlider }
func (s *Slider) Type() ValueType     { return s.ValueType }
func (s *Slider) Pos() Span           { return s.Span }

func (s *Slider) fields() []field {
	return []field{
		{"type", s.Kind()},
		{"valueType", s.ValueType},
		{"min", s.Min},
		{"max", s.Max},
		{"default", s.Default},
		{"step", s.Step},
	}
}

// Color is a color picker bound to a vec3.
type Color struct {
	Name      string
	ValueType ValueType
	// Default is the color as written in the directive: a CSS color name or
	// a #rgb / #rrggbb hex string.
	Default string
	Span    Span
}

func (c *Color) ControlName() string { return c.Name }
func (c *Color) Kind() Kind          { return KindColor }
func (c *Color) Type() ValueType     { return c.ValueType }
func (c *Color) Pos() Span           { return c.Span }

// RGB returns the default color with components in [0, 1].
func (c *Color) RGB() colorful.Color {
	col, err := ParseColor(c.Default)
	if err != nil {
		return colorful.Color{}
	}
	return col
}

func (c *Color) fields() []field {
	return []field{
		{"type", c.Kind()},
		{"valueType", c.ValueType},
		{"default", c.Default},
	}
}

// Checkbox is a boolean toggle.
type Checkbox struct {
	Name      string
	ValueType ValueType
	Default   bool
	Span      Span
}

func (c *Checkbox) ControlName() string { return c.Name }
func (c *Checkbox) Kind() Kind          { return KindCheckbox }
func (c *Checkbox) Type() ValueType     { return c.ValueType }
func (c *Checkbox) Pos() Span           { return c.Span }

func (c *Checkbox) fields() []field {
	return []field{
		{"type", c.Kind()},
		{"valueType", c.ValueType},
		{"default", c.Default},
	}
}
