package uicontrol

// ValueType is the shader type a control binds to.
type ValueType uint8

const (
	ValueTypeInvalid ValueType = iota
	ValueTypeFloat
	ValueTypeInt
	ValueTypeUint
	ValueTypeBool
	ValueTypeVec2
	ValueTypeVec3
	ValueTypeVec4
)

var valueTypeNames = map[string]ValueType{
	"float": ValueTypeFloat,
	"int":   ValueTypeInt,
	"uint":  ValueTypeUint,
	"bool":  ValueTypeBool,
	"vec2":  ValueTypeVec2,
	"vec3":  ValueTypeVec3,
	"vec4":  ValueTypeVec4,
}

// ParseValueType returns the value type spelled name in GLSL.
func ParseValueType(name string) (ValueType, bool) {
	vt, ok := valueTypeNames[name]
	return vt, ok
}

// String returns the GLSL spelling of the value type.
func (t ValueType) String() string {
	switch t {
	case ValueTypeFloat:
		return "float"
	case ValueTypeInt:
		return "int"
	case ValueTypeUint:
		return "uint"
	case ValueTypeBool:
		return "bool"
	case ValueTypeVec2:
		return "vec2"
	case ValueTypeVec3:
		return "vec3"
	case ValueTypeVec4:
		return "vec4"
	default:
		return "invalid"
	}
}

// IsInteger reports whether values of t are whole numbers.
func (t ValueType) IsInteger() bool {
	return t == ValueTypeInt || t == ValueTypeUint
}

// MarshalText implements encoding.TextMarshaler.
func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Kind is the UI flavor of a control.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSlider
	KindColor
	KindCheckbox
)

var kindNames = map[string]Kind{
	"slider":   KindSlider,
	"color":    KindColor,
	"checkbox": KindCheckbox,
}

// ParseKind returns the control kind with the given name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// String returns the directive spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindSlider:
		return "slider"
	case KindColor:
		return "color"
	case KindCheckbox:
		return "checkbox"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
