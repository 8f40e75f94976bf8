package options

// Schema is the explicit set of option keys a configuration level
// recognizes. It drives Partition when a derived scope type routes an
// incoming option set between itself and the more generic scope it
// wraps.
type Schema map[string]struct{}

// NewSchema builds a schema from the given keys.
func NewSchema(keys ...string) Schema {
	s := make(Schema, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}

	return s
}

// Has reports whether the schema recognizes key.
func (s Schema) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Partition splits kwargs into the entries whose keys the schema
// recognizes (claimed) and the rest (unclaimed). Every input key lands
// in exactly one of the two outputs; none is duplicated or dropped.
func Partition(kwargs Values, schema Schema) (claimed, unclaimed Values) {
	claimed = make(Values)
	unclaimed = make(Values)

	for k, v := range kwargs {
		if schema.Has(k) {
			claimed[k] = v
		} else {
			unclaimed[k] = v
		}
	}

	return claimed, unclaimed
}
