package shaderui

import (
	"strings"
	"testing"

	"github.com/gogpu/shaderui/uicontrol"
)

const shaderWithControls = `// Brightness/contrast shader.
#uicontrol float brightness slider(min=-1, max=1) // additive
#uicontrol float contrast slider(min=0, max=4, default=1, step=0.1)
/* tint applied last
   #uicontrol vec3 hidden color(default="blue") */
#uicontrol vec3 tint color(default="#ffcc00")
#uicontrol bool invert checkbox
void main() {
  vec3 c = getDataValue() * contrast + brightness; // "quoted"
  if (invert) c = 1.0 - c;
  emitRGB(c * tint);
}
`

func TestPreprocess(t *testing.T) {
	result := Preprocess(shaderWithControls)

	if result.Errors.HasErrors() {
		t.Fatalf("unexpected errors:\n%s", result.Errors.FormatAll())
	}

	names := result.Controls.Names()
	want := []string{"brightness", "contrast", "tint", "invert"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", names, want)
	}
	if _, ok := result.Controls.Get("hidden"); ok {
		t.Error("directive inside a block comment should be ignored")
	}

	ctl, _ := result.Controls.Get("brightness")
	if s := ctl.(*uicontrol.Slider); s.Default != 0 || s.Step != 0.01 {
		t.Errorf("brightness = %+v", s)
	}
}

func TestPreprocess_Geometry(t *testing.T) {
	result := Preprocess(shaderWithControls)

	in := strings.Split(shaderWithControls, "\n")
	out := strings.Split(result.Code, "\n")
	if len(in) != len(out) {
		t.Fatalf("line count = %d, want %d", len(out), len(in))
	}

	if out[7] != "void main() {" {
		t.Errorf("line 8 = %q, want unchanged code", out[7])
	}
	wantLine9 := "  vec3 c = getDataValue() * contrast + brightness;" + strings.Repeat(" ", len(` // "quoted"`))
	if out[8] != wantLine9 {
		t.Errorf("line 9 = %q, want %q", out[8], wantLine9)
	}
	for _, i := range []int{1, 2, 5, 6} {
		if out[i] != "" {
			t.Errorf("directive line %d = %q, want empty", i+1, out[i])
		}
	}
	for _, i := range []int{0, 3, 4} {
		if len(out[i]) != len(in[i]) || strings.TrimSpace(out[i]) != "" {
			t.Errorf("comment line %d = %q, want %d spaces", i+1, out[i], len(in[i]))
		}
	}
}

func TestPreprocess_ErrorsShowOriginalSource(t *testing.T) {
	source := "void main() {}\n#uicontrol float x slider(min=0) // needs max\n"
	result := Preprocess(source)

	if result.Errors.Len() != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	formatted := result.Errors[0].FormatWithContext()
	if !strings.Contains(formatted, "// needs max") {
		t.Errorf("context should show the original line:\n%s", formatted)
	}
	if result.Errors[0].Span.Start.Line != 2 {
		t.Errorf("error line = %d, want 2", result.Errors[0].Span.Start.Line)
	}
}

func TestPreprocess_CommentedOutDirective(t *testing.T) {
	source := "// #uicontrol float x slider(min=0, max=1)\n"
	result := Preprocess(source)

	if result.Controls.Len() != 0 || result.Errors.HasErrors() {
		t.Errorf("commented directive should be ignored, got %v / %v", result.Controls.Names(), result.Errors)
	}
	if result.Code != strings.Repeat(" ", len(source)-1)+"\n" {
		t.Errorf("Code = %q", result.Code)
	}
}

func TestPreprocessWithOptions(t *testing.T) {
	source := "#uicontrol bool a checkbox\n#uicontrol bool a checkbox(default=true)\n"

	opts := uicontrol.DefaultOptions()
	opts.Collision = uicontrol.KeepLast
	opts.Blank = uicontrol.BlankSpaces
	result := PreprocessWithOptions(source, opts)

	ctl, ok := result.Controls.Get("a")
	if !ok || !ctl.(*uicontrol.Checkbox).Default {
		t.Errorf("KeepLast should keep the later declaration, got %v", ctl)
	}
	if result.Errors.Len() != 1 {
		t.Errorf("expected one collision error, got %v", result.Errors)
	}
	lines := strings.Split(result.Code, "\n")
	if len(lines[0]) != len("#uicontrol bool a checkbox") || strings.TrimSpace(lines[0]) != "" {
		t.Errorf("BlankSpaces should keep line length, got %q", lines[0])
	}
}

func TestStripComments(t *testing.T) {
	if got := StripComments("a // b"); got != "a     " {
		t.Errorf("StripComments = %q", got)
	}
}

func TestParseControls_DoesNotStrip(t *testing.T) {
	result := ParseControls("#uicontrol bool a checkbox // note\n")
	if !result.Errors.HasErrors() {
		t.Error("ParseControls should see the comment as trailing tokens")
	}
}
