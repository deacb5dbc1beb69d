package edgelist

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Reasons recorded for skipped records.
var (
	// ErrFieldCount: a line did not contain exactly three fields.
	ErrFieldCount = errors.New("edgelist: expected exactly 3 fields <from> <to> <cost>")

	// ErrNotInteger: a field could not be parsed as a base-10 integer.
	ErrNotInteger = errors.New("edgelist: field is not an integer")

	// ErrNegativeCost: a cost was negative while WithStrictCosts was set.
	ErrNegativeCost = errors.New("edgelist: negative cost")
)

// DefaultTerminator is the token that ends console input.
const DefaultTerminator = "end"

// Issue describes one skipped record.
type Issue struct {
	Line   int    // 1-based line number in the source
	Text   string // the raw line, trimmed
	Reason error  // one of the sentinel reasons, possibly wrapped
}

// String renders the issue as "line N: reason (text)".
func (i Issue) String() string {
	return fmt.Sprintf("line %d: %v (%q)", i.Line, i.Reason, i.Text)
}

// Report summarises one parse.
type Report struct {
	Lines      int     // lines read, terminator included
	Accepted   int     // records turned into edges
	Skipped    []Issue // records dropped, in input order
	Terminated bool    // input ended at the terminator rather than EOF
}

// Options configures a parse.
type Options struct {
	Logger      *slog.Logger
	Source      string // name used in log records, e.g. a file path
	Terminator  string // empty: read to EOF
	StrictCosts bool
}

// Option is a functional option for Parse, ParseYAML and ParseFile.
type Option func(*Options)

// WithLogger routes skip warnings to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSource names the input in log records.
func WithSource(name string) Option {
	return func(o *Options) { o.Source = name }
}

// WithTerminator stops reading at the first line equal to tok.
func WithTerminator(tok string) Option {
	return func(o *Options) { o.Terminator = tok }
}

// WithStrictCosts skips records with a negative cost (ErrNegativeCost).
func WithStrictCosts() Option {
	return func(o *Options) { o.StrictCosts = true }
}

func buildOptions(opts []Option) Options {
	cfg := Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Source: "input",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// skip records an issue and logs it.
func (o *Options) skip(rep *Report, line int, text string, reason error) {
	rep.Skipped = append(rep.Skipped, Issue{Line: line, Text: text, Reason: reason})
	o.Logger.Warn("skipping malformed edge record",
		"source", o.Source,
		"line", line,
		"text", text,
		"err", reason,
	)
}
