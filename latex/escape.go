package latex

import "strings"

// latexEscaper rewrites the characters LaTeX treats specially in text
// mode. Backslash, tilde, and caret have no single-character escape and
// map to their control-word forms.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape returns s with LaTeX special characters escaped so the result
// renders literally in text mode.
func Escape(s string) string {
	return latexEscaper.Replace(s)
}
