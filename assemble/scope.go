package assemble

import (
	"errors"
	"fmt"
	"slices"

	"doclistbuilder/options"
)

var (
	ErrNotClosed     = errors.New("scope has not been closed")
	ErrAlreadyClosed = errors.New("scope is already closed")
)

// Option keys recognized at the generic scope level.
const (
	OptInitial  = "initial"  // []string seeding the accumulating list
	OptPipeline = "pipeline" // []Stage folded over the list on close
)

// Stage is one pure transformation of the pipeline. Each stage consumes
// the sequence produced by the previous stage and produces the sequence
// for the next.
type Stage func([]string) []string

var scopeDefaults = options.NewLadder(options.Values{
	OptInitial:  []string(nil),
	OptPipeline: []Stage(nil),
})

// Defaults returns the base option chain for generic scopes. Derived
// scope flavors extend it with their own default layers.
func Defaults() *options.Ladder {
	return scopeDefaults
}

// OptionKeys returns the schema of keys claimed by the generic scope
// level, used to route option sets in a delegation chain.
func OptionKeys() options.Schema {
	return options.NewSchema(OptInitial, OptPipeline)
}

// Scope is one nesting level of text assembly. It is created open,
// accumulates items, and closes exactly once.
type Scope struct {
	settings *options.Ladder
	parent   *List
	data     *List
	pipeline []Stage
	result   []string
	closed   bool
}

// New opens a generic scope over the base defaults. The opts overlay
// becomes the instance layer of the scope's option chain.
func New(parent *List, opts options.Values) (*Scope, error) {
	return NewFrom(Defaults(), parent, opts)
}

// NewFrom opens a scope over an already-extended option chain. The
// initial content is copied, never aliased, and the pipeline defaults
// to the identity (no stages). Badly typed options fail here, before
// the scope becomes usable.
func NewFrom(chain *options.Ladder, parent *List, opts options.Values) (*Scope, error) {
	settings := chain.Overlay(opts)

	initial, err := options.Get[[]string](settings, OptInitial)
	if err != nil {
		return nil, fmt.Errorf("resolving initial content: %w", err)
	}

	pipeline, err := options.Get[[]Stage](settings, OptPipeline)
	if err != nil {
		return nil, fmt.Errorf("resolving pipeline: %w", err)
	}

	s := &Scope{
		settings: settings,
		parent:   parent,
		pipeline: pipeline,
	}
	s.data = newList(initial, s)

	return s, nil
}

// Items returns the live accumulating sequence. Only meaningful while
// the scope is open; after Close the sequence is no longer consulted.
func (s *Scope) Items() *List {
	return s.data
}

// Settings returns the scope's resolved option chain.
func (s *Scope) Settings() *options.Ladder {
	return s.settings
}

// Parent returns the enclosing scope's accumulating list, or nil for a
// top-level scope.
func (s *Scope) Parent() *List {
	return s.parent
}

// Closed reports whether the scope has been closed.
func (s *Scope) Closed() bool {
	return s.closed
}

// Close runs the pipeline stages in registration order over the
// accumulated sequence, fixes the result, and appends it to the parent
// list if one was supplied. A second Close returns ErrAlreadyClosed and
// changes nothing.
func (s *Scope) Close() error {
	if s.closed {
		return ErrAlreadyClosed
	}

	s.closed = true

	out := slices.Clone(s.data.items)
	for _, stage := range s.pipeline {
		out = stage(out)
	}

	s.result = out

	if s.parent != nil {
		s.parent.Extend(out)
	}

	return nil
}

// With runs fn against the accumulating sequence and guarantees Close
// on every exit path: normal return, returned error, or panic. The fn
// error takes precedence over a close error.
func (s *Scope) With(fn func(*List) error) (err error) {
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(s.data)
}

// Result returns a copy of the final sequence after the scope has
// closed. Before then it fails with ErrNotClosed; it never returns a
// partial or stale value.
func (s *Scope) Result() ([]string, error) {
	if !s.closed {
		return nil, ErrNotClosed
	}

	return slices.Clone(s.result), nil
}
