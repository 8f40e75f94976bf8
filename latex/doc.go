// Package latex builds LaTeX source from nested scopes.
//
// LaTeX mixes sequential and nested structure: a document is a sequence
// of commands with its body nested inside a document environment, and
// environments themselves wrap \begin{name} ... \end{name} around their
// content. The types here mirror that shape on top of the assemble
// package: each document part accumulates a list of lines, and closing
// it joins the lines with a delimiter, wraps them in a computed
// prefix/suffix pair, and appends the single rendered string into the
// enclosing part's list.
//
// Components:
//   - Part: generic document part with a fixed join-then-wrap pipeline
//   - Command: \newcommand{\name}[nargs][default]{% ... }% definitions
//   - Environment: \begin{name}[ops]{args}% ... \end{name}% blocks
//   - Body: line helpers (description items, rules) over a part's list
//
// Names are validated eagerly against the LaTeX grammar before any
// scope state is allocated; an invalid name never produces a partially
// constructed part.
package latex
