// Package comment removes comments from shader source without moving anything.
//
// Strip blanks every character that belongs to a // line comment or a
// /* block comment */ (delimiters included) with a space. Line terminators
// inside block comments are kept, so the stripped text has the same number of
// lines as the input and every surviving character stays at the same line and
// column. Double-quoted string literals are copied verbatim: a // or /* inside
// a string never opens a comment.
//
// # Usage
//
//	clean := comment.Strip(source)
//
// Strip never fails. Unterminated block comments run to the end of the source
// and unterminated string literals end at the next newline; diagnosing either
// is left to the shader compiler.
package comment
