package latex

import (
	"errors"
	"fmt"
	"strings"

	"doclistbuilder/assemble"
	"doclistbuilder/options"
)

// Option keys recognized at the document-part level.
const (
	OptName      = "name"      // symbolic name (command or environment identifier)
	OptProlog    = "prolog"    // prefix string prepended by the wrap stage
	OptEpilog    = "epilog"    // suffix string appended by the wrap stage
	OptDelimiter = "delimiter" // delimiter placed between items by the join stage
)

var partDefaults = assemble.Defaults().Extend(options.Values{
	OptName:      "",
	OptProlog:    "",
	OptEpilog:    "",
	OptDelimiter: "\n",
})

// Part is a scope flavor whose pipeline is fixed to two stages: join
// the accumulated items with the delimiter, then wrap the joined string
// in the prolog/epilog pair.
type Part struct {
	*assemble.Scope
}

// NewPart opens a generic document part. Recognized part-level options
// are OptName, OptProlog, OptEpilog, and OptDelimiter; scope-level keys
// route to the underlying scope, and unrecognized keys simply become
// part of the instance's option chain.
func NewPart(parent *assemble.List, opts options.Values) (*Part, error) {
	return newPart(partDefaults, parent, opts)
}

func newPart(chain *options.Ladder, parent *assemble.List, opts options.Values) (*Part, error) {
	p := &Part{}

	up, down := options.Partition(opts, assemble.OptionKeys())
	if _, ok := up[assemble.OptPipeline]; !ok {
		up[assemble.OptPipeline] = []assemble.Stage{p.join, p.wrap}
	}

	if len(down) > 0 {
		chain = chain.Extend(down)
	}

	s, err := assemble.NewFrom(chain, parent, up)
	if err != nil {
		return nil, err
	}

	p.Scope = s

	for _, key := range []string{OptName, OptProlog, OptEpilog, OptDelimiter} {
		if _, err := options.Get[string](s.Settings(), key); err != nil {
			return nil, fmt.Errorf("resolving part option: %w", err)
		}
	}

	return p, nil
}

// Name returns the part's symbolic name, or the empty string when the
// part is anonymous.
func (p *Part) Name() string {
	name, _ := options.Get[string](p.Settings(), OptName)
	return name
}

// Body returns the part's accumulating list wrapped with the LaTeX line
// helpers.
func (p *Part) Body() Body {
	return Body{p.Items()}
}

// With runs fn against the part's body and guarantees close-and-append
// on every exit path, like assemble.Scope.With.
func (p *Part) With(fn func(Body) error) error {
	return p.Scope.With(func(l *assemble.List) error {
		return fn(Body{l})
	})
}

// Rendered returns the part's final string after it has closed. The
// join-then-wrap pipeline always folds to a single item.
func (p *Part) Rendered() (string, error) {
	res, err := p.Result()
	if err != nil {
		return "", err
	}

	return strings.Join(res, ""), nil
}

// join folds the accumulated items into a single item using the
// delimiter option. An empty input joins to one empty string.
func (p *Part) join(items []string) []string {
	return []string{strings.Join(items, p.stringOption(OptDelimiter))}
}

// wrap concatenates prolog, the joined content, and epilog into the
// final single-item sequence.
func (p *Part) wrap(items []string) []string {
	var b strings.Builder
	b.WriteString(p.stringOption(OptProlog))

	for _, item := range items {
		b.WriteString(item)
	}

	b.WriteString(p.stringOption(OptEpilog))

	return []string{b.String()}
}

// stringOption resolves a part-level string option. Construction has
// already type-checked the part keys, so resolution cannot fail for
// them; the empty string covers a stored nil.
func (p *Part) stringOption(key string) string {
	v, _ := options.Get[string](p.Settings(), key)
	return v
}

// optionalString resolves key to a string when it is present and
// non-nil. A missing key or a stored nil reads as absent.
func optionalString(l *options.Ladder, key string) (string, bool, error) {
	v, err := l.Lookup(key)
	if err != nil {
		if errors.Is(err, options.ErrMissingOption) {
			return "", false, nil
		}

		return "", false, err
	}

	if v == nil {
		return "", false, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %q is %T", options.ErrWrongType, key, v)
	}

	return s, true, nil
}
