// Package assemble provides a composable, nestable scope abstraction
// for building text line by line.
//
// A Scope is opened against an optional parent List, accumulates string
// items during its open lifetime, and on Close folds the accumulated
// sequence through a configured pipeline of stages. The final sequence
// becomes the scope's immutable result and, when a parent was supplied,
// is appended to the parent's sequence.
//
// Lifecycle:
//   - open: New allocates the accumulating List, seeded from the
//     "initial" option
//   - append: callers add items or open child scopes against the List
//   - close: Close (or the deferred close inside With) runs the
//     pipeline exactly once and propagates the result upward
//
// Nesting is strictly LIFO: an inner scope closes before control
// returns to the enclosing scope. Sibling results land in the parent in
// the order the siblings close, not the order they were opened.
package assemble
