package latex

import (
	"fmt"

	"doclistbuilder/assemble"
)

// Body wraps a part's accumulating list with LaTeX line helpers.
type Body struct {
	*assemble.List
}

// DescItem appends a description-style item line: \item [{KEY}] VALUE.
func (b Body) DescItem(key, value string) {
	b.Append(fmt.Sprintf(`\item [{%s}] %s`, key, value))
}

// Rule appends a horizontal rule line: \rule{WIDTH}{HEIGHT}. Empty
// width and height fall back to \textwidth and 0.4pt.
func (b Body) Rule(width, height string) {
	if width == "" {
		width = `\textwidth`
	}

	if height == "" {
		height = "0.4pt"
	}

	b.Append(fmt.Sprintf(`\rule{%s}{%s}`, width, height))
}
