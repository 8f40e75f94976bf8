package latex

import (
	"fmt"
	"strings"

	"doclistbuilder/assemble"
	"doclistbuilder/options"
)

// Option keys recognized by Environment on top of the part level.
const (
	OptArgs = "args" // string arguments (in {}) to the environment, nil when absent
	OptOps  = "ops"  // string options (in []) to the environment, nil when absent
)

var environmentDefaults = partDefaults.Extend(options.Values{
	OptArgs: nil,
	OptOps:  nil,
})

// Environment is a document part rendering an environment block:
//
//	\begin{name}[ops]{args}%
//	...body...
//	\end{name}%
//
// The [ops] and {args} segments appear only when the corresponding
// option is supplied and non-empty.
type Environment struct {
	*Part
}

// NewEnvironment opens an environment part. The name must match the
// LaTeX environment-name grammar; a violation fails here with no
// partially constructed part escaping.
func NewEnvironment(parent *assemble.List, name string, opts options.Values) (*Environment, error) {
	if err := ValidateEnvironmentName(name); err != nil {
		return nil, err
	}

	merged := environmentDefaults.Overlay(opts)

	ops, _, err := optionalString(merged, OptOps)
	if err != nil {
		return nil, fmt.Errorf("resolving ops: %w", err)
	}

	args, _, err := optionalString(merged, OptArgs)
	if err != nil {
		return nil, fmt.Errorf("resolving args: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `\begin{%s}`, name)

	if ops != "" {
		fmt.Fprintf(&b, "[%s]", ops)
	}

	if args != "" {
		fmt.Fprintf(&b, "{%s}", args)
	}

	b.WriteString("%\n")

	routed := make(options.Values, len(opts)+3)
	for k, v := range opts {
		routed[k] = v
	}

	routed[OptName] = name
	routed[OptProlog] = b.String()

	if _, ok := routed[OptEpilog]; !ok {
		routed[OptEpilog] = fmt.Sprintf("\n\\end{%s}%%", name)
	}

	p, err := newPart(environmentDefaults, parent, routed)
	if err != nil {
		return nil, err
	}

	return &Environment{Part: p}, nil
}
