package parser

import "strings"

// Outcome is the result of ParseSmart, per spec.md §6.
type Outcome struct {
	OK         bool
	Results    []Value
	ErrorCount int
	Errors     []string
	// Multiple is reserved for a future multi-document mode and is
	// always false today.
	Multiple bool
}

// ParseSmart is the primary API (spec.md §6): parse input, recovering
// locally from every malformation it can, and report what happened.
func ParseSmart(input string, opts ...Option) Outcome {
	options := newOptions(opts...)

	if isBlank(input) {
		return Outcome{OK: true}
	}

	p := newParser(input, options)
	return p.run()
}

// run drives one top-level parse and builds the Outcome, including
// the strict-mode bailout unwind (spec.md §7): the first diagnostic
// in strict mode panics with bailout, recovered here exactly once.
func (p *parser) run() (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			out = Outcome{
				OK:         false,
				Results:    nil,
				ErrorCount: 1,
				Errors:     []string{p.log[0].Format()},
			}
		}
	}()

	p.sc.SkipWhitespaceAndComments(p.opts.AllowComments)
	if p.sc.EOF() {
		return Outcome{OK: p.log.Empty(), Results: []Value{NullValue()}, ErrorCount: len(p.log), Errors: p.log.Formatted()}
	}

	val := p.dispatch()
	if val.Kind() == absent {
		val = NullValue()
	}

	return Outcome{
		OK:         p.log.Empty(),
		Results:    []Value{val},
		ErrorCount: len(p.log),
		Errors:     p.log.Formatted(),
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Parser is the secondary/direct API of spec.md §6: a reusable-looking
// handle constructed from (input, options) exposing a single Parse
// method. Per spec.md §5 a parser instance is not actually reusable --
// state is consumed in one pass -- so Parse panics if called twice,
// rather than silently returning a stale or zeroed result.
type Parser struct {
	p    *parser
	used bool
}

// New constructs a direct-API parser over input.
func New(input string, opts ...Option) *Parser {
	options := newOptions(opts...)
	return &Parser{p: newParser(input, options)}
}

// Parse runs the parse and returns ok, the single decoded value (Null
// for empty input), and the formatted diagnostic messages.
func (ps *Parser) Parse() (ok bool, result Value, errors []string) {
	if ps.used {
		panic("parser: Parse called more than once on the same Parser")
	}
	ps.used = true

	out := ps.p.run()
	if len(out.Results) == 0 {
		return out.OK, NullValue(), out.Errors
	}
	return out.OK, out.Results[0], out.Errors
}
