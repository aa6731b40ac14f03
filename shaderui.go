// Package shaderui preprocesses shader source that declares UI controls.
//
// Shader authors declare tunable parameters inline with #uicontrol
// directives. Preprocess removes comments and directives from the source,
// without moving any other character, and returns the validated control
// descriptors alongside the cleaned code:
//
//	source := `
//	#uicontrol float brightness slider(min=0, max=1) // overall gain
//	void main() {
//	  emitRGB(vec3(brightness));
//	}
//	`
//	result := shaderui.Preprocess(source)
//	if result.Errors.HasErrors() {
//	    log.Fatal(result.Errors.FormatAll())
//	}
//	compile(result.Code)
//
// Because line structure is preserved, diagnostics the shader compiler reports
// on result.Code point at the right line of the original source.
//
// The stages are also available on their own, in the comment and uicontrol
// packages.
package shaderui

import (
	"github.com/gogpu/shaderui/comment"
	"github.com/gogpu/shaderui/uicontrol"
)

// Preprocess strips comments and extracts #uicontrol directives using
// uicontrol.DefaultOptions.
//
// This is the simplest way to preprocess a shader. For more control, use
// PreprocessWithOptions or the individual StripComments/ParseControls
// functions.
func Preprocess(source string) *uicontrol.Result {
	return PreprocessWithOptions(source, uicontrol.DefaultOptions())
}

// PreprocessWithOptions strips comments and extracts #uicontrol directives.
//
// The pipeline is:
//  1. Replace comments with spaces (comment.Strip)
//  2. Parse and blank directive lines (uicontrol.ParseWithOptions)
//
// Errors carry the original, unstripped source for context display unless
// opts.Original is already set.
func PreprocessWithOptions(source string, opts uicontrol.Options) *uicontrol.Result {
	if opts.Original == "" {
		opts.Original = source
	}
	return uicontrol.ParseWithOptions(comment.Strip(source), opts)
}

// StripComments replaces every comment character in source with a space.
//
// The result has the same lines and columns as source.
func StripComments(source string) string {
	return comment.Strip(source)
}

// ParseControls extracts #uicontrol directives from comment-free source.
//
// Callers must strip comments first; ParseControls does not.
func ParseControls(source string) *uicontrol.Result {
	return uicontrol.Parse(source)
}
