package uicontrol

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// paramType is the literal form a parameter value must take.
type paramType uint8

const (
	paramNumber paramType = iota
	paramString
	paramBool
)

func (t paramType) String() string {
	switch t {
	case paramNumber:
		return "a number"
	case paramString:
		return "a quoted string"
	case paramBool:
		return "true or false"
	default:
		return "a value"
	}
}

type paramSpec struct {
	name     string
	typ      paramType
	required bool
}

// kindSchema describes one control kind: the value types it can bind to,
// its parameters, and how a validated descriptor is built from them.
type kindSchema struct {
	valueTypes []ValueType
	params     []paramSpec
	build      func(d *directive, vt ValueType, args arguments) (Control, *SourceError)
}

// schemas is the closed set of control kinds. Adding a kind means adding a
// Kind constant, a Control implementation and an entry here.
var schemas = map[Kind]kindSchema{
	KindSlider: {
		valueTypes: []ValueType{ValueTypeFloat, ValueTypeInt, ValueTypeUint},
		params: []paramSpec{
			{name: "min", typ: paramNumber, required: true},
			{name: "max", typ: paramNumber, required: true},
			{name: "default", typ: paramNumber},
			{name: "step", typ: paramNumber},
		},
		build: buildSlider,
	},
	KindColor: {
		valueTypes: []ValueType{ValueTypeVec3},
		params: []paramSpec{
			{name: "default", typ: paramString},
		},
		build: buildColor,
	},
	KindCheckbox: {
		valueTypes: []ValueType{ValueTypeBool},
		params: []paramSpec{
			{name: "default", typ: paramBool},
		},
		build: buildCheckbox,
	},
}

// DefaultColor is the default of a color control declared without one.
const DefaultColor = "white"

// argument is a parameter value converted to its schema type.
type argument struct {
	tok Token
	num float64
	str string
	b   bool
}

type arguments map[string]argument

// resolve turns a parsed directive into a validated control.
func resolve(d *directive) (Control, *SourceError) {
	kind, ok := ParseKind(d.kind.Lexeme)
	if !ok {
		return nil, NewSourceErrorf(SyntaxError, d.kind.Span, "",
			"unknown control kind %q (expected one of %s)", d.kind.Lexeme, kindList())
	}
	vt, ok := ParseValueType(d.valueType.Lexeme)
	if !ok {
		return nil, NewSourceErrorf(SyntaxError, d.valueType.Span, "",
			"unknown value type %q", d.valueType.Lexeme)
	}

	schema := schemas[kind]
	if !schema.accepts(vt) {
		return nil, NewSourceErrorf(ValidationError, d.valueType.Span, "",
			"%s control cannot bind to %s (expected %s)", kind, vt, typeList(schema.valueTypes))
	}

	args, err := schema.bind(kind, d)
	if err != nil {
		return nil, err
	}
	return schema.build(d, vt, args)
}

func (s kindSchema) accepts(vt ValueType) bool {
	for _, t := range s.valueTypes {
		if t == vt {
			return true
		}
	}
	return false
}

func (s kindSchema) spec(name string) (paramSpec, bool) {
	for _, ps := range s.params {
		if ps.name == name {
			return ps, true
		}
	}
	return paramSpec{}, false
}

// bind matches the directive's parameters against the schema and converts
// each value.
func (s kindSchema) bind(kind Kind, d *directive) (arguments, *SourceError) {
	args := make(arguments, len(d.params))
	for _, p := range d.params {
		ps, ok := s.spec(p.key.Lexeme)
		if !ok {
			return nil, NewSourceErrorf(ValidationError, p.key.Span, "",
				"unknown parameter %q for %s control", p.key.Lexeme, kind)
		}
		if _, dup := args[ps.name]; dup {
			return nil, NewSourceErrorf(SyntaxError, p.key.Span, "",
				"duplicate parameter %q", ps.name)
		}
		arg, err := convert(ps, p.value)
		if err != nil {
			return nil, err
		}
		args[ps.name] = arg
	}

	for _, ps := range s.params {
		if _, ok := args[ps.name]; ps.required && !ok {
			return nil, NewSourceErrorf(ValidationError, d.kind.Span, "",
				"%s control requires parameter %q", kind, ps.name)
		}
	}
	return args, nil
}

func convert(ps paramSpec, tok Token) (argument, *SourceError) {
	mismatch := func() *SourceError {
		return NewSourceErrorf(ValidationError, tok.Span, "",
			"parameter %q expects %s, found %s", ps.name, ps.typ, describe(tok))
	}

	arg := argument{tok: tok}
	switch ps.typ {
	case paramNumber:
		if tok.Kind != TokenNumber {
			return arg, mismatch()
		}
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return arg, NewSourceErrorf(SyntaxError, tok.Span, "",
				"invalid number %q for parameter %q", tok.Lexeme, ps.name)
		}
		arg.num = v
	case paramString:
		if tok.Kind != TokenString {
			return arg, mismatch()
		}
		s, err := strconv.Unquote(tok.Lexeme)
		if err != nil {
			return arg, NewSourceErrorf(SyntaxError, tok.Span, "",
				"invalid string literal %s for parameter %q", tok.Lexeme, ps.name)
		}
		arg.str = s
	case paramBool:
		if tok.Kind != TokenIdent || (tok.Lexeme != "true" && tok.Lexeme != "false") {
			return arg, mismatch()
		}
		arg.b = tok.Lexeme == "true"
	}
	return arg, nil
}

func buildSlider(d *directive, vt ValueType, args arguments) (Control, *SourceError) {
	for _, name := range []string{"min", "max", "default", "step"} {
		arg, ok := args[name]
		if !ok {
			continue
		}
		if vt.IsInteger() && arg.num != math.Trunc(arg.num) {
			return nil, NewSourceErrorf(ValidationError, arg.tok.Span, "",
				"%s slider parameter %q must be an integer, got %s", vt, name, formatNumber(arg.num))
		}
		if vt == ValueTypeUint && arg.num < 0 {
			return nil, NewSourceErrorf(ValidationError, arg.tok.Span, "",
				"uint slider parameter %q must not be negative, got %s", name, formatNumber(arg.num))
		}
		if lo, hi, ok := integerRange(vt); ok && (arg.num < lo || arg.num > hi) {
			return nil, NewSourceErrorf(ValidationError, arg.tok.Span, "",
				"%s slider parameter %q must be within [%s, %s], got %s",
				vt, name, formatNumber(lo), formatNumber(hi), formatNumber(arg.num))
		}
	}

	minArg, maxArg := args["min"], args["max"]
	s := &Slider{
		Name:      d.name.Lexeme,
		ValueType: vt,
		Min:       minArg.num,
		Max:       maxArg.num,
		Span:      d.span,
	}
	if s.Min > s.Max {
		return nil, NewSourceErrorf(ValidationError, maxArg.tok.Span, "",
			"slider max %s is less than min %s", formatNumber(s.Max), formatNumber(s.Min))
	}

	if step, ok := args["step"]; ok {
		if step.num <= 0 {
			return nil, NewSourceErrorf(ValidationError, step.tok.Span, "",
				"slider step must be positive, got %s", formatNumber(step.num))
		}
		s.Step = step.num
	} else {
		s.Step = defaultStep(vt)
	}

	if def, ok := args["default"]; ok {
		if def.num < s.Min || def.num > s.Max {
			return nil, NewSourceErrorf(ValidationError, def.tok.Span, "",
				"slider default %s is outside [%s, %s]",
				formatNumber(def.num), formatNumber(s.Min), formatNumber(s.Max))
		}
		s.Default = def.num
	} else {
		// Halving first keeps the sum finite near the float64 limits.
		mid := s.Min/2 + s.Max/2
		if vt.IsInteger() {
			mid = math.Floor(mid)
		}
		s.Default = math.Min(math.Max(mid, s.Min), s.Max)
	}

	return s, nil
}

// integerRange returns the bounds of the 32-bit shader integer types.
func integerRange(vt ValueType) (lo, hi float64, ok bool) {
	switch vt {
	case ValueTypeInt:
		return math.MinInt32, math.MaxInt32, true
	case ValueTypeUint:
		return 0, math.MaxUint32, true
	default:
		return 0, 0, false
	}
}

func defaultStep(vt ValueType) float64 {
	if vt.IsInteger() {
		return 1
	}
	return 0.01
}

func buildColor(d *directive, vt ValueType, args arguments) (Control, *SourceError) {
	c := &Color{
		Name:      d.name.Lexeme,
		ValueType: vt,
		Default:   DefaultColor,
		Span:      d.span,
	}
	if def, ok := args["default"]; ok {
		if _, err := ParseColor(def.str); err != nil {
			return nil, NewSourceError(ValidationError, err.Error(), def.tok.Span, "")
		}
		c.Default = def.str
	}
	return c, nil
}

func buildCheckbox(d *directive, vt ValueType, args arguments) (Control, *SourceError) {
	return &Checkbox{
		Name:      d.name.Lexeme,
		ValueType: vt,
		Default:   args["default"].b,
		Span:      d.span,
	}, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func kindList() string {
	names := make([]string, 0, len(kindNames))
	for k := KindSlider; k <= KindCheckbox; k++ {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func typeList(types []ValueType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	if len(names) == 1 {
		return names[0]
	}
	return fmt.Sprintf("%s or %s", strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
}
