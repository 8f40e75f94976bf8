// Package options implements layered option resolution for scope
// configuration.
//
// A Ladder is an ordered chain of mapping layers consulted
// most-specific first: one layer per participating type, ordered from
// the most ancestral type to the most derived, topped by a mutable
// instance layer. Resolution rules:
//   - A key defined in a more specific layer shadows the same key in a
//     more general layer.
//   - A type with no declared defaults contributes no layer.
//   - A key absent from every layer fails at lookup time with
//     ErrMissingOption, never at construction time.
//
// Derived types build their chain with Extend; instances resolve theirs
// with Overlay. Layers below the instance layer are shared between
// ladders and are read-only after construction.
package options

import (
	"errors"
	"fmt"
)

var (
	ErrMissingOption = errors.New("option is not defined in any layer")
	ErrWrongType     = errors.New("option value has unexpected type")
)

// Values is a single layer of option key/value pairs.
type Values map[string]any

// Ladder is a chain of Values layers, most specific first.
type Ladder struct {
	layers []Values // layers[0] is the instance layer
}

// NewLadder builds a ladder from type defaults ordered least to most
// specific, with a fresh empty instance layer on top. Nil or empty
// defaults contribute no layer.
func NewLadder(defaults ...Values) *Ladder {
	l := &Ladder{layers: make([]Values, 0, len(defaults)+1)}
	l.layers = append(l.layers, Values{})

	for i := len(defaults) - 1; i >= 0; i-- {
		if len(defaults[i]) == 0 {
			continue
		}

		l.layers = append(l.layers, defaults[i])
	}

	return l
}

// Extend returns the chain for a derived type: the receiver's type
// layers plus one more specific layer, under a fresh instance layer.
// The receiver is not modified; type layers are shared, not copied.
func (l *Ladder) Extend(defaults Values) *Ladder {
	n := &Ladder{layers: make([]Values, 0, len(l.layers)+1)}
	n.layers = append(n.layers, Values{})

	if len(defaults) > 0 {
		n.layers = append(n.layers, defaults)
	}

	n.layers = append(n.layers, l.layers[1:]...)

	return n
}

// Overlay returns the chain for an instance: the receiver's type layers
// under a fresh instance layer seeded from vals. The seed is copied so
// later mutation of vals does not leak into the ladder.
func (l *Ladder) Overlay(vals Values) *Ladder {
	top := make(Values, len(vals))
	for k, v := range vals {
		top[k] = v
	}

	n := &Ladder{layers: make([]Values, 0, len(l.layers))}
	n.layers = append(n.layers, top)
	n.layers = append(n.layers, l.layers[1:]...)

	return n
}

// Set writes a key into the instance layer, shadowing every type layer.
func (l *Ladder) Set(key string, value any) {
	l.layers[0][key] = value
}

// Lookup returns the value from the most specific layer defining key,
// or an error wrapping ErrMissingOption if no layer defines it.
func (l *Ladder) Lookup(key string) (any, error) {
	for _, layer := range l.layers {
		if v, ok := layer[key]; ok {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrMissingOption, key)
}

// Has reports whether any layer defines key.
func (l *Ladder) Has(key string) bool {
	_, err := l.Lookup(key)
	return err == nil
}

// Get resolves key and asserts its type. A stored nil yields the zero
// value of T; a value of another dynamic type is an ErrWrongType error.
func Get[T any](l *Ladder, key string) (T, error) {
	var zero T

	v, err := l.Lookup(key)
	if err != nil {
		return zero, err
	}

	if v == nil {
		return zero, nil
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T", ErrWrongType, key, v)
	}

	return t, nil
}
