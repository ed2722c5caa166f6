// Package timeblok is the public entry point of the TimeBlok compiler:
// source text plus a base time in, iCalendar or CSV text out (spec §6).
package timeblok

import (
	"fmt"
	"time"

	"github.com/jettchent/timeblok-go/emit"
	"github.com/jettchent/timeblok-go/environment"
	"github.com/jettchent/timeblok-go/importer"
	"github.com/jettchent/timeblok-go/ir"
	"github.com/jettchent/timeblok-go/preset"
	"github.com/jettchent/timeblok-go/resolver"
)

// Parser turns TimeBlok source text into unresolved records. The PEG
// grammar/lexer that implements this is out of scope (spec §1); callers
// supply their own, matching the teacher's injectable-backend pattern
// (server.New(store, ...) taking a storage.Backend).
type Parser interface {
	Parse(source string) ([]ir.Record, error)
}

// ParserFunc adapts a plain function to Parser.
type ParserFunc func(source string) ([]ir.Record, error)

func (f ParserFunc) Parse(source string) ([]ir.Record, error) { return f(source) }

// Option configures a Compiler.
type Option func(*Compiler)

// WithParser supplies the Parser implementation (required before Compile
// can be called; there is no default since the grammar is out of scope).
func WithParser(p Parser) Option {
	return func(c *Compiler) { c.parser = p }
}

// WithFetcher wires the preset package's import/holidays/region commands
// to an importer.Fetcher (optional; those commands error if omitted and
// invoked).
func WithFetcher(f importer.Fetcher) Option {
	return func(c *Compiler) { c.fetcher = f }
}

// Compiler is TimeBlok's top-level, functional-options-configured
// compiler object, the same construction pattern as the teacher's
// server.New(store, prefix, opts...) (davserver/server/server.go).
type Compiler struct {
	parser  Parser
	fetcher importer.Fetcher
}

// New builds a Compiler from options.
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile runs the full parse -> resolve -> emit(iCalendar) pipeline.
func (c *Compiler) Compile(source string, baseTime ir.ExactDateTime) (string, error) {
	resolved, err := c.compileToResolved(source, baseTime)
	if err != nil {
		return "", err
	}
	return ResolvedToICal(resolved)
}

// CompileDeterministic is Compile, but with each UID derived from the
// record's position and every DTSTAMP fixed to baseTime (spec §8
// invariant 7): two
// compilations of the same source and baseTime are byte-identical.
func (c *Compiler) CompileDeterministic(source string, baseTime ir.ExactDateTime) (string, error) {
	resolved, err := c.compileToResolved(source, baseTime)
	if err != nil {
		return "", err
	}
	ts, err := baseTime.ToTime()
	if err != nil {
		return "", fmt.Errorf("compile deterministic: %w", err)
	}
	return emit.ToICal(resolved, emit.Deterministic(ts))
}

// CompileCSV runs parse -> resolve -> emit(CSV).
func (c *Compiler) CompileCSV(source string, baseTime ir.ExactDateTime) (string, error) {
	resolved, err := c.compileToResolved(source, baseTime)
	if err != nil {
		return "", err
	}
	return ResolvedToCSV(resolved)
}

func (c *Compiler) compileToResolved(source string, baseTime ir.ExactDateTime) ([]ir.ExactRecord, error) {
	if c.parser == nil {
		return nil, fmt.Errorf("compiler: no Parser configured")
	}
	records, err := c.parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return RecordsToResolved(records, baseTime, c.fetcher), nil
}

// TbToRecords parses source into unresolved records using p.
func TbToRecords(p Parser, source string) ([]ir.Record, error) {
	return p.Parse(source)
}

// RecordsToResolved runs the resolver over records, anchored at baseTime.
// fetcher may be nil if the source uses none of the import/holidays/
// region commands.
func RecordsToResolved(records []ir.Record, baseTime ir.ExactDateTime, fetcher importer.Fetcher) []ir.ExactRecord {
	r := resolver.New(resolver.WithPresetInstaller(func(env *environment.Environment) {
		if fetcher != nil {
			preset.InsertWithFetcher(env, fetcher)
		} else {
			preset.Insert(env)
		}
	}))
	return r.Resolve(records, baseTime)
}

// ResolvedToICal renders resolved records as a VCALENDAR document.
func ResolvedToICal(records []ir.ExactRecord) (string, error) {
	return emit.ToICal(records)
}

// ResolvedToCSV renders resolved records as CSV (header "timerange,event").
func ResolvedToCSV(records []ir.ExactRecord) (string, error) {
	return emit.ToCSV(records)
}

// BaseTimeNow is a convenience helper for constructing a base time from
// the current wall clock in the local zone, recorded as a fixed offset.
func BaseTimeNow() ir.ExactDateTime {
	return ir.ExactDateTimeFromTime(time.Now())
}
