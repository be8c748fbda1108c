package model

import "strings"

// Fold builds the case-folded shadow of r: a Registry of identical shape
// whose HKEY lines, key names and values are all lower-cased. The shadow is
// read-only scaffolding for ignore-case lookups; the primary model keeps its
// stored casing untouched.
//
// Mutations do not flow into an existing shadow. Callers rebuild it after
// every mutating operation so ignore-case reads within one run stay
// authoritative.
func Fold(r *Registry) *Registry {
	out := NewRegistry()
	for _, hkey := range r.hkeys {
		src := r.sets[hkey]
		dst := NewKeySet()
		for _, name := range src.names {
			dst.Set(strings.ToLower(name), strings.ToLower(src.vals[name]))
		}
		out.Put(strings.ToLower(hkey), dst)
	}
	return out
}
