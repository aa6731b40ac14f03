package uicontrol

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"github.com/goccy/go-yaml"
)

// Controls maps control names to descriptors, in declaration order.
type Controls struct {
	names  []string
	byName map[string]Control
}

// NewControls returns an empty mapping.
func NewControls() *Controls {
	return &Controls{byName: make(map[string]Control)}
}

// Len returns the number of controls.
func (c *Controls) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Get returns the control declared under name.
func (c *Controls) Get(name string) (Control, bool) {
	if c == nil {
		return nil, false
	}
	ctl, ok := c.byName[name]
	return ctl, ok
}

// Names returns the control names in declaration order.
func (c *Controls) Names() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.names)
}

// All iterates over the controls in declaration order.
func (c *Controls) All() iter.Seq2[string, Control] {
	return func(yield func(string, Control) bool) {
		if c == nil {
			return
		}
		for _, name := range c.names {
			if !yield(name, c.byName[name]) {
				return
			}
		}
	}
}

// set inserts ctl, or replaces an existing control of the same name while
// keeping its position.
func (c *Controls) set(ctl Control) {
	name := ctl.ControlName()
	if _, ok := c.byName[name]; !ok {
		c.names = append(c.names, name)
	}
	c.byName[name] = ctl
}

func (c *Controls) remove(name string) {
	if _, ok := c.byName[name]; !ok {
		return
	}
	delete(c.byName, name)
	c.names = slices.DeleteFunc(c.names, func(n string) bool { return n == name })
}

// MarshalJSON encodes the controls as a JSON object keyed by name, keeping
// declaration order.
func (c *Controls) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, ctl := range c.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeFieldsJSON(&buf, ctl.fields()); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeFieldsJSON(buf *bytes.Buffer, fields []field) error {
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler, keeping declaration order.
func (c *Controls) MarshalYAML() (any, error) {
	out := yaml.MapSlice{}
	for name, ctl := range c.All() {
		fields := ctl.fields()
		item := make(yaml.MapSlice, 0, len(fields))
		for _, f := range fields {
			item = append(item, yaml.MapItem{Key: f.Key, Value: yamlValue(f.Value)})
		}
		out = append(out, yaml.MapItem{Key: name, Value: item})
	}
	return out, nil
}

// yamlValue converts enum values to their spelling so the encoder does not
// depend on TextMarshaler support.
func yamlValue(v any) any {
	switch v := v.(type) {
	case Kind:
		return v.String()
	case ValueType:
		return v.String()
	default:
		return v
	}
}
