package uicontrol

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CollisionPolicy decides what happens when a control name is declared more
// than once. Every repeated declaration is reported as a CollisionError
// whatever the policy.
type CollisionPolicy uint8

const (
	// KeepFirst keeps the first successful declaration.
	KeepFirst CollisionPolicy = iota
	// KeepLast replaces the control with the latest declaration, keeping the
	// position of the first one in the mapping.
	KeepLast
	// DropAll removes the name from the mapping altogether.
	DropAll
)

var collisionNames = map[string]CollisionPolicy{
	"first": KeepFirst,
	"last":  KeepLast,
	"drop":  DropAll,
}

// ParseCollisionPolicy parses "first", "last" or "drop".
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	if p, ok := collisionNames[s]; ok {
		return p, nil
	}
	return KeepFirst, fmt.Errorf("invalid collision policy %q (expected first, last or drop)", s)
}

// String returns the policy name accepted by ParseCollisionPolicy.
func (p CollisionPolicy) String() string {
	switch p {
	case KeepFirst:
		return "first"
	case KeepLast:
		return "last"
	case DropAll:
		return "drop"
	default:
		return "unknown"
	}
}

// BlankMode decides how directive lines are blanked in the output code.
type BlankMode uint8

const (
	// BlankEmpty replaces a directive line with an empty line.
	BlankEmpty BlankMode = iota
	// BlankSpaces replaces every character of a directive line with a
	// space, so the line keeps its length.
	BlankSpaces
)

// ParseBlankMode parses "empty" or "spaces".
func ParseBlankMode(s string) (BlankMode, error) {
	switch s {
	case "empty":
		return BlankEmpty, nil
	case "spaces":
		return BlankSpaces, nil
	default:
		return BlankEmpty, fmt.Errorf("invalid blank mode %q (expected empty or spaces)", s)
	}
}

// String returns the mode name accepted by ParseBlankMode.
func (m BlankMode) String() string {
	switch m {
	case BlankEmpty:
		return "empty"
	case BlankSpaces:
		return "spaces"
	default:
		return "unknown"
	}
}

// Options configures directive parsing.
type Options struct {
	Collision CollisionPolicy
	Blank     BlankMode

	// Original, when set, is attached to errors for context display instead
	// of the parsed text. It is normally the source before comment
	// stripping and must have the same line structure.
	Original string
}

// DefaultOptions returns first-declaration-wins, empty-line blanking.
func DefaultOptions() Options {
	return Options{
		Collision: KeepFirst,
		Blank:     BlankEmpty,
	}
}

// Result is the outcome of parsing a source.
type Result struct {
	// Code is the source with every directive line blanked. It has the same
	// number of lines as the input and all other lines are unchanged.
	Code string
	// Errors lists syntax, validation and collision errors in source order.
	Errors SourceErrors
	// Controls maps names to descriptors in order of first declaration.
	Controls *Controls
}

// Parse extracts #uicontrol directives from comment-free source using
// DefaultOptions.
func Parse(source string) *Result {
	return ParseWithOptions(source, DefaultOptions())
}

// ParseWithOptions extracts #uicontrol directives from comment-free source.
//
// It never fails: every problem is reported in Result.Errors and processing
// continues with the next line.
func ParseWithOptions(source string, opts Options) *Result {
	p := &parser{
		source:   source,
		context:  source,
		opts:     opts,
		controls: NewControls(),
		declared: make(map[string]Span),
		dropped:  make(map[string]bool),
	}
	if opts.Original != "" {
		p.context = opts.Original
	}
	p.out.Grow(len(source))
	p.run()

	return &Result{
		Code:     p.out.String(),
		Errors:   p.errors,
		Controls: p.controls,
	}
}

type parser struct {
	source  string
	context string
	opts    Options

	out      strings.Builder
	controls *Controls
	errors   SourceErrors
	declared map[string]Span
	dropped  map[string]bool
}

func (p *parser) run() {
	line := 1
	for offset := 0; offset < len(p.source); line++ {
		next := len(p.source)
		end := next
		if i := strings.IndexByte(p.source[offset:], '\n'); i >= 0 {
			end = offset + i
			next = end + 1
		}
		content := strings.TrimSuffix(p.source[offset:end], "\r")
		terminator := p.source[offset+len(content) : next]

		if isDirective(content) {
			p.directive(content, line, offset)
			if p.opts.Blank == BlankSpaces {
				p.out.WriteString(strings.Repeat(" ", utf8.RuneCountInString(content)))
			}
		} else {
			p.out.WriteString(content)
		}
		p.out.WriteString(terminator)

		offset = next
	}
}

func (p *parser) directive(content string, line, offset int) {
	tokens, err := NewLexer(content, line, offset).tokenize()
	if err != nil {
		p.addError(err)
		return
	}
	d, err := parseDirective(tokens)
	if err != nil {
		p.addError(err)
		return
	}
	ctl, err := resolve(d)
	if err != nil {
		p.addError(err)
		return
	}
	p.declare(ctl, d.name)
}

func (p *parser) declare(ctl Control, nameTok Token) {
	name := ctl.ControlName()
	if p.dropped[name] {
		p.addError(NewSourceErrorf(CollisionError, nameTok.Span, "",
			"control %q is declared more than once", name))
		return
	}

	first, ok := p.declared[name]
	if !ok {
		p.declared[name] = ctl.Pos()
		p.controls.set(ctl)
		return
	}

	p.addError(NewSourceErrorf(CollisionError, nameTok.Span, "",
		"control %q already declared at line %d", name, first.Start.Line))

	switch p.opts.Collision {
	case KeepLast:
		p.controls.set(ctl)
	case DropAll:
		p.controls.remove(name)
		p.dropped[name] = true
	}
}

func (p *parser) addError(err *SourceError) {
	err.Source = p.context
	p.errors.Add(err)
}
