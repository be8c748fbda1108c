// Package model holds the in-memory representation of a registry text
// export: an ordered mapping of HKEY lines to ordered key/value sets, plus
// the case-folded shadow used for ignore-case lookups.
//
// Ordering is insertion order from the source file; new entries append.
// Renames are modeled as delete-then-insert, so a renamed entry moves to the
// end of its mapping. Stored casing is never normalized.
package model

import "strings"

// DefaultKey is the key name denoting an HKEY's unnamed default value.
const DefaultKey = "@"

// KeySet is an ordered mapping from key name to raw value text.
type KeySet struct {
	names []string
	vals  map[string]string
}

// NewKeySet returns an empty KeySet.
func NewKeySet() *KeySet {
	return &KeySet{vals: make(map[string]string)}
}

// Len returns the number of keys.
func (ks *KeySet) Len() int { return len(ks.names) }

// Names returns the key names in insertion order. The slice is shared; do
// not mutate it.
func (ks *KeySet) Names() []string { return ks.names }

// Get returns the stored value for name.
func (ks *KeySet) Get(name string) (string, bool) {
	v, ok := ks.vals[name]
	return v, ok
}

// Has reports whether name exists.
func (ks *KeySet) Has(name string) bool {
	_, ok := ks.vals[name]
	return ok
}

// Set stores val under name, appending the name if new and keeping its
// position if it already exists.
func (ks *KeySet) Set(name, val string) {
	if _, ok := ks.vals[name]; !ok {
		ks.names = append(ks.names, name)
	}
	ks.vals[name] = val
}

// Delete removes name and reports whether it existed.
func (ks *KeySet) Delete(name string) bool {
	if _, ok := ks.vals[name]; !ok {
		return false
	}
	delete(ks.vals, name)
	for i, n := range ks.names {
		if n == name {
			ks.names = append(ks.names[:i], ks.names[i+1:]...)
			break
		}
	}
	return true
}

// Rename moves the value stored under old to the name to. The renamed key
// is re-appended at the end of the ordering.
func (ks *KeySet) Rename(old, to string) bool {
	v, ok := ks.vals[old]
	if !ok {
		return false
	}
	ks.Delete(old)
	ks.Set(to, v)
	return true
}

// Registry is an ordered mapping from HKEY-path line (including its literal
// brackets) to a KeySet.
type Registry struct {
	hkeys []string
	sets  map[string]*KeySet
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]*KeySet)}
}

// Len returns the number of HKEYs.
func (r *Registry) Len() int { return len(r.hkeys) }

// HKeys returns the HKEY lines in insertion order. The slice is shared; do
// not mutate it.
func (r *Registry) HKeys() []string { return r.hkeys }

// Get returns the KeySet for hkey.
func (r *Registry) Get(hkey string) (*KeySet, bool) {
	ks, ok := r.sets[hkey]
	return ks, ok
}

// Has reports whether hkey exists.
func (r *Registry) Has(hkey string) bool {
	_, ok := r.sets[hkey]
	return ok
}

// Put stores ks under hkey. A duplicate hkey keeps its original position but
// the KeySet reference is replaced, matching how a later duplicate HKEY line
// in the source wins.
func (r *Registry) Put(hkey string, ks *KeySet) {
	if _, ok := r.sets[hkey]; !ok {
		r.hkeys = append(r.hkeys, hkey)
	}
	r.sets[hkey] = ks
}

// Ensure returns the KeySet for hkey, creating an empty one if absent.
func (r *Registry) Ensure(hkey string) *KeySet {
	if ks, ok := r.sets[hkey]; ok {
		return ks
	}
	ks := NewKeySet()
	r.Put(hkey, ks)
	return ks
}

// Delete removes hkey together with its KeySet.
func (r *Registry) Delete(hkey string) bool {
	if _, ok := r.sets[hkey]; !ok {
		return false
	}
	delete(r.sets, hkey)
	for i, h := range r.hkeys {
		if h == hkey {
			r.hkeys = append(r.hkeys[:i], r.hkeys[i+1:]...)
			break
		}
	}
	return true
}

// Rename moves the KeySet stored under old to the name to. The renamed HKEY
// is re-appended at the end of the ordering.
func (r *Registry) Rename(old, to string) bool {
	ks, ok := r.sets[old]
	if !ok {
		return false
	}
	r.Delete(old)
	r.Put(to, ks)
	return true
}

// ResolveHKey maps a lower-cased needle back to the stored HKEY line with its
// original casing. Used to locate mutation targets in ignore-case mode.
func (r *Registry) ResolveHKey(needle string) (string, bool) {
	needle = strings.ToLower(needle)
	for _, h := range r.hkeys {
		if strings.ToLower(h) == needle {
			return h, true
		}
	}
	return "", false
}

// ResolveKey maps a lower-cased key needle back to its stored name.
func (ks *KeySet) ResolveKey(needle string) (string, bool) {
	needle = strings.ToLower(needle)
	for _, n := range ks.names {
		if strings.ToLower(n) == needle {
			return n, true
		}
	}
	return "", false
}
