// Package utils holds small generic helpers shared across packages.
package utils

import "cmp"

// IsInRange reports whether value lies within [min, max], both inclusive.
func IsInRange[T cmp.Ordered](min T, value T, max T) bool {
	return min <= value && value <= max
}
