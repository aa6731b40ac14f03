// Package uicontrol extracts #uicontrol directives from shader source.
//
// A directive declares a tunable parameter bound to a shader variable:
//
//	#uicontrol float brightness slider(min=0, max=1, step=0.05)
//	#uicontrol vec3 tint color(default="#ff8000")
//	#uicontrol bool invert checkbox(default=true)
//
// The grammar is
//
//	#uicontrol <valueType> <name> <kind>[(<key>=<value>, ...)]
//
// where a value is a number, a double-quoted string or a bare identifier,
// depending on the parameter.
//
// # Components
//
//   - Lexer: Tokenizes one directive line
//   - Parser: Classifies lines, parses directives and blanks them out
//   - Schema: Per-kind value types, parameters and defaults
//   - Controls: Ordered mapping from name to validated Control
//
// # Usage
//
// Parse expects source that has already been through comment.Strip:
//
//	result := uicontrol.Parse(comment.Strip(source))
//	if result.Errors.HasErrors() {
//	    fmt.Println(result.Errors.FormatAll())
//	}
//	for name, ctl := range result.Controls.All() {
//	    switch c := ctl.(type) {
//	    case *uicontrol.Slider:
//	        fmt.Println(name, c.Min, c.Max, c.Default)
//	    }
//	}
//
// result.Code keeps every line of the input; directive lines are emptied so
// compiler diagnostics on the remaining code still point at the right line.
//
// # Kinds
//
//   - slider: float, int or uint; min and max required; default is the
//     midpoint (rounded down for integers); step is 0.01 for float, 1 otherwise
//   - color: vec3; default is a color name or #rgb/#rrggbb, "white" if absent
//   - checkbox: bool; default is true or false, false if absent
package uicontrol
