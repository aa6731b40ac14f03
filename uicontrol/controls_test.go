package uicontrol

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

const orderedSource = `#uicontrol vec3 zeta color(default="red")
#uicontrol float alpha slider(min=0, max=1)
#uicontrol bool mid checkbox(default=true)
`

func TestControls_Order(t *testing.T) {
	result := Parse(orderedSource)
	if result.Errors.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	want := []string{"zeta", "alpha", "mid"}
	if diff := cmp.Diff(want, result.Controls.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	var iterated []string
	for name, ctl := range result.Controls.All() {
		if ctl.ControlName() != name {
			t.Errorf("control %q reports name %q", name, ctl.ControlName())
		}
		iterated = append(iterated, name)
	}
	if diff := cmp.Diff(want, iterated); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}
}

func TestControls_AllStopsEarly(t *testing.T) {
	result := Parse(orderedSource)
	count := 0
	for range result.Controls.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iteration should stop after break, ran %d times", count)
	}
}

func TestControls_NilSafe(t *testing.T) {
	var c *Controls
	if c.Len() != 0 {
		t.Error("nil Controls should be empty")
	}
	if _, ok := c.Get("x"); ok {
		t.Error("nil Controls should not find anything")
	}
	if c.Names() != nil {
		t.Error("nil Controls should have no names")
	}
	for range c.All() {
		t.Error("nil Controls should not iterate")
	}
}

func TestControls_SetAndRemove(t *testing.T) {
	c := NewControls()
	c.set(&Checkbox{Name: "a", ValueType: ValueTypeBool})
	c.set(&Checkbox{Name: "b", ValueType: ValueTypeBool})
	c.set(&Checkbox{Name: "a", ValueType: ValueTypeBool, Default: true})

	if diff := cmp.Diff([]string{"a", "b"}, c.Names()); diff != "" {
		t.Errorf("replacing should keep position (-want +got):\n%s", diff)
	}
	if ctl, _ := c.Get("a"); !ctl.(*Checkbox).Default {
		t.Error("set should replace the control")
	}

	c.remove("a")
	c.remove("missing")
	if diff := cmp.Diff([]string{"b"}, c.Names()); diff != "" {
		t.Errorf("remove mismatch (-want +got):\n%s", diff)
	}
}

func TestControls_MarshalJSON(t *testing.T) {
	result := Parse("#uicontrol float brightness slider(min=0, max=1)\n#uicontrol vec3 color color(default=\"red\")\n")

	data, err := json.Marshal(result.Controls)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"brightness":{"type":"slider","valueType":"float","min":0,"max":1,"default":0.5,"step":0.01},` +
		`"color":{"type":"color","valueType":"vec3","default":"red"}}`
	if string(data) != want {
		t.Errorf("JSON =\n%s\nwant\n%s", data, want)
	}
}

func TestControls_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(NewControls())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("JSON = %s, want {}", data)
	}
}

func TestControls_MarshalYAML(t *testing.T) {
	result := Parse(orderedSource)

	data, err := yaml.Marshal(result.Controls)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(data)

	for _, want := range []string{"zeta:", "type: color", "valueType: vec3", "default: red", "alpha:", "type: slider", "mid:", "default: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
	if !(strings.Index(out, "zeta:") < strings.Index(out, "alpha:") && strings.Index(out, "alpha:") < strings.Index(out, "mid:")) {
		t.Errorf("YAML output should keep declaration order:\n%s", out)
	}

	var decoded map[string]map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["alpha"]["valueType"] != "float" {
		t.Errorf("alpha.valueType = %v, want float", decoded["alpha"]["valueType"])
	}
}
