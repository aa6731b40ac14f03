package shaderui

import (
	"runtime"
	"strings"
	"testing"

	"github.com/gogpu/shaderui/comment"
	"github.com/gogpu/shaderui/uicontrol"
)

// ---------------------------------------------------------------------------
// Test shader sources at different sizes
// ---------------------------------------------------------------------------

// shaderSmall is a single-control fragment shader.
const shaderSmall = `
#uicontrol float brightness slider(min=0, max=1)
void main() {
  emitGrayscale(getDataValue() + brightness);
}
`

// shaderMedium mixes every control kind with line and block comments.
const shaderMedium = `
// Colormap shader with adjustable range.
#uicontrol float lo slider(min=0, max=65535, default=0, step=1) // lower bound
#uicontrol float hi slider(min=0, max=65535, default=4000, step=1) // upper bound
#uicontrol vec3 tint color(default="#ffcc00")
#uicontrol bool invert checkbox(default=false)
/*
 * Normalizes the raw value into [0, 1] and applies the tint.
 */
float normalized() {
  float v = (toRaw(getDataValue()) - lo) / (hi - lo); // may exceed 1
  return clamp(invert ? 1.0 - v : v, 0.0, 1.0);
}
void main() {
  emitRGB(tint * normalized());
}
`

// shaderLarge repeats the medium shader body with distinct control names.
var shaderLarge = func() string {
	var sb strings.Builder
	for i := range 50 {
		name := string(rune('a'+i%26)) + strings.Repeat("x", i/26)
		sb.WriteString("#uicontrol float " + name + " slider(min=0, max=1) // control\n")
		sb.WriteString("/* block */ float use_" + name + "() { return " + name + "; }\n")
	}
	sb.WriteString(shaderMedium)
	return sb.String()
}()

type shaderCase struct {
	name   string
	source string
}

var shadersBySize = []shaderCase{
	{"small", shaderSmall},
	{"medium", shaderMedium},
	{"large", shaderLarge},
}

// ---------------------------------------------------------------------------
// Pipeline and stage benchmarks
// ---------------------------------------------------------------------------

// BenchmarkPreprocess benchmarks the full strip + parse pipeline.
func BenchmarkPreprocess(b *testing.B) {
	for _, sc := range shadersBySize {
		b.Run(sc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(sc.source)))
			b.ResetTimer()

			var result *uicontrol.Result
			for i := 0; i < b.N; i++ {
				result = Preprocess(sc.source)
				if result.Errors.HasErrors() {
					b.Fatalf("preprocess failed: %v", result.Errors)
				}
			}
			runtime.KeepAlive(result)
		})
	}
}

// BenchmarkStrip benchmarks comment stripping alone.
func BenchmarkStrip(b *testing.B) {
	for _, sc := range shadersBySize {
		b.Run(sc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(sc.source)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				runtime.KeepAlive(comment.Strip(sc.source))
			}
		})
	}
}

// BenchmarkParseControls benchmarks directive parsing on pre-stripped source.
func BenchmarkParseControls(b *testing.B) {
	for _, sc := range shadersBySize {
		b.Run(sc.name, func(b *testing.B) {
			stripped := comment.Strip(sc.source)
			b.ReportAllocs()
			b.SetBytes(int64(len(stripped)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				runtime.KeepAlive(uicontrol.Parse(stripped))
			}
		})
	}
}
