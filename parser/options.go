package parser

// Options controls the reader's recovery policies, per spec.md §3.
// Unknown fields set by future callers are simply fields this struct
// doesn't have -- there is nothing to ignore, since Options is a plain
// struct rather than a map, which satisfies spec.md §9's "unknown
// fields must be ignored silently" by construction.
type Options struct {
	// Strict aborts the parse on the first diagnostic instead of
	// recovering from it.
	Strict bool
	// MaxDepth caps nested container depth.
	MaxDepth int
	// AllowComments makes the whitespace skipper also consume
	// //... and /*...*/ spans.
	AllowComments bool
	// AllowTrailingComma silences the diagnostic for a separator
	// immediately before a closer.
	AllowTrailingComma bool
	// ConvertPythonTokens accepts True/False/None as true/false/null,
	// each logging a diagnostic.
	ConvertPythonTokens bool
	// ConvertUndefined accepts undefined as null, logging a
	// diagnostic.
	ConvertUndefined bool
}

// DefaultOptions is the effective default Options, exported verbatim
// per spec.md §6 ("Defaults export... must be inspectable by callers
// verbatim").
var DefaultOptions = Options{
	Strict:              false,
	MaxDepth:            100,
	AllowComments:       true,
	AllowTrailingComma:  true,
	ConvertPythonTokens: true,
	ConvertUndefined:    true,
}

// Option configures a Parser, following the functional-options shape
// the teacher uses for its authorization engine
// (cedar.Option / cedar.WithSchema / cedar.WithTracing in
// github.com/koblas/cedar-go/authorize.go) rather than taking an
// Options struct directly, so call sites read as a list of named
// deviations from the default.
type Option func(*Options)

// WithStrict aborts the parse at the first diagnostic.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithMaxDepth overrides the nested-container depth cap.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithComments toggles // and /* */ comment recognition.
func WithComments(allow bool) Option {
	return func(o *Options) { o.AllowComments = allow }
}

// WithTrailingComma toggles whether a trailing separator before a
// closer is silently accepted.
func WithTrailingComma(allow bool) Option {
	return func(o *Options) { o.AllowTrailingComma = allow }
}

// WithPythonTokens toggles True/False/None conversion.
func WithPythonTokens(allow bool) Option {
	return func(o *Options) { o.ConvertPythonTokens = allow }
}

// WithUndefined toggles undefined -> null conversion.
func WithUndefined(allow bool) Option {
	return func(o *Options) { o.ConvertUndefined = allow }
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
