package latex

import (
	"fmt"
	"strings"

	"doclistbuilder/assemble"
	"doclistbuilder/options"
	"doclistbuilder/utils"
)

// Option keys recognized by Command on top of the part level.
const (
	OptNargs   = "nargs"   // int argument count, 0 through 9
	OptDefault = "default" // string default for the first argument, nil when absent
)

var commandDefaults = partDefaults.Extend(options.Values{
	OptNargs:   0,
	OptDefault: nil,
	OptEpilog:  "\n}%",
})

// Command is a document part rendering a \newcommand definition:
//
//	\newcommand{\name}[nargs][default]{%
//	...body...
//	}%
//
// The [nargs] segment appears only for a positive argument count and
// the [default] segment only when a default value option is supplied.
type Command struct {
	*Part
}

// NewCommand opens a command-definition part. The name must match the
// LaTeX control-word grammar and nargs must lie in [0, 9]; violations
// fail here with no partially constructed part escaping.
func NewCommand(parent *assemble.List, name string, opts options.Values) (*Command, error) {
	if err := ValidateControlWord(name); err != nil {
		return nil, err
	}

	merged := commandDefaults.Overlay(opts)

	nargs, err := options.Get[int](merged, OptNargs)
	if err != nil {
		return nil, fmt.Errorf("resolving nargs: %w", err)
	}

	if !utils.IsInRange(0, nargs, 9) {
		return nil, fmt.Errorf("%w: nargs must be between 0 and 9, got %d", ErrArgCount, nargs)
	}

	defValue, hasDefault, err := optionalString(merged, OptDefault)
	if err != nil {
		return nil, fmt.Errorf("resolving default: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `\newcommand{\%s}`, name)

	if nargs > 0 {
		fmt.Fprintf(&b, "[%d]", nargs)
	}

	if hasDefault {
		fmt.Fprintf(&b, "[%s]", defValue)
	}

	b.WriteString("{%\n")

	routed := make(options.Values, len(opts)+2)
	for k, v := range opts {
		routed[k] = v
	}

	routed[OptName] = name
	routed[OptProlog] = b.String()

	p, err := newPart(commandDefaults, parent, routed)
	if err != nil {
		return nil, err
	}

	return &Command{Part: p}, nil
}
