// Package edit implements the CRUD engine: the path-, key- and value-level
// operations on the parsed registry model. Every operation returns exactly
// one result code from the fixed taxonomy in pkg/types; logical non-mutations
// (already-exists, not-found, mismatch, no-op rename) are ordinary outcomes,
// not errors.
package edit

import (
	"strings"

	"github.com/mathworld/regedit/internal/model"
	"github.com/mathworld/regedit/pkg/types"
)

// Engine applies operations to a registry model under a fixed lookup mode.
// In fold mode all lookups and comparisons go through the case-folded index,
// which is rebuilt after every mutation so later reads stay authoritative.
type Engine struct {
	reg  *model.Registry
	fold *model.Registry
	mode types.Mode
}

// New builds an engine over reg. The case-folded index is computed up front
// in fold mode and never in exact mode.
func New(reg *model.Registry, mode types.Mode) *Engine {
	e := &Engine{reg: reg, mode: mode}
	if mode == types.ModeFold {
		e.fold = model.Fold(reg)
	}
	return e
}

// Registry returns the primary (stored-casing) model.
func (e *Engine) Registry() *model.Registry { return e.reg }

func (e *Engine) refold() {
	if e.mode == types.ModeFold {
		e.fold = model.Fold(e.reg)
	}
}

// view returns the registry lookups read from, with the needle transformed
// to match: the folded shadow with lower-cased needles in fold mode, the
// primary model untouched otherwise.
func (e *Engine) view() *model.Registry {
	if e.mode == types.ModeFold {
		return e.fold
	}
	return e.reg
}

func (e *Engine) needle(s string) string {
	if e.mode == types.ModeFold {
		return strings.ToLower(s)
	}
	return s
}

func (e *Engine) sameVal(stored, queried string) bool {
	if e.mode == types.ModeFold {
		return strings.EqualFold(stored, queried)
	}
	return stored == queried
}

// target resolves hkey to its stored-casing line in the primary model, for
// operations that mutate. Exact mode is a plain existence check.
func (e *Engine) target(hkey string) (string, bool) {
	if e.mode == types.ModeFold {
		return e.reg.ResolveHKey(hkey)
	}
	if e.reg.Has(hkey) {
		return hkey, true
	}
	return "", false
}

// -----------------------------------------------------------------------------
// Queries
// -----------------------------------------------------------------------------

// HKeyExists reports whether hkey is present. The fold-mode codes are
// distinct so callers can tell which lookup semantics produced the answer.
func (e *Engine) HKeyExists(hkey string) types.Code {
	ok := e.view().Has(e.needle(hkey))
	switch {
	case ok && e.mode == types.ModeFold:
		return types.CodeHkeyExistsFold
	case ok:
		return types.CodeHkeyExists
	case e.mode == types.ModeFold:
		return types.CodeHkeyNotExistsFold
	default:
		return types.CodeHkeyNotExists
	}
}

// KeyExists reports whether key is present under hkey.
func (e *Engine) KeyExists(hkey, key string) types.Code {
	ks, ok := e.view().Get(e.needle(hkey))
	if !ok {
		return types.CodeHkeyNotExists
	}
	if !ks.Has(e.needle(key)) {
		return types.CodeKeyNotExists
	}
	return types.CodeKeyExists
}

// ConfirmValue checks that key under hkey stores exactly val.
func (e *Engine) ConfirmValue(hkey, key, val string) types.Code {
	ks, ok := e.view().Get(e.needle(hkey))
	if !ok {
		return types.CodeHkeyNotExists
	}
	stored, ok := ks.Get(e.needle(key))
	if !ok {
		return types.CodeKVKeyNotExists
	}
	if stored != e.needle(val) {
		return types.CodeValueMismatch
	}
	return types.CodeValueConfirmed
}

// GetValue returns the stored value for key under hkey. The value comes from
// the primary model so its original casing survives fold-mode lookups.
func (e *Engine) GetValue(hkey, key string) (string, types.Code) {
	canonical, ok := e.target(hkey)
	if !ok {
		return "", types.CodeHkeyNotExists
	}
	ks, _ := e.reg.Get(canonical)
	name := key
	if e.mode == types.ModeFold {
		if name, ok = ks.ResolveKey(key); !ok {
			return "", types.CodeKVKeyNotExists
		}
	}
	stored, ok := ks.Get(name)
	if !ok {
		return "", types.CodeKVKeyNotExists
	}
	return stored, types.CodeValueRead
}

// -----------------------------------------------------------------------------
// Mutations
// -----------------------------------------------------------------------------

// AddHKey appends an empty HKEY block unless it already exists.
func (e *Engine) AddHKey(hkey string) types.Code {
	if _, ok := e.target(hkey); ok {
		return types.CodeHkeyAlreadyExists
	}
	e.reg.Put(hkey, model.NewKeySet())
	e.refold()
	return types.CodeHkeyAdded
}

// AddKey appends key under hkey without a value (value-agnostic add),
// creating the HKEY block if absent. An existing key is left untouched.
func (e *Engine) AddKey(hkey, key string) types.Code {
	ks, key := e.ensure(hkey, key)
	if ks.Has(key) {
		return types.CodeKeyAlreadyExists
	}
	ks.Set(key, "")
	e.refold()
	return types.CodeKeyAdded
}

// AddKeyValue appends key=val under hkey, creating the HKEY block if absent.
// An existing key keeps its current value even when val differs; add never
// overwrites.
func (e *Engine) AddKeyValue(hkey, key, val string) types.Code {
	ks, key := e.ensure(hkey, key)
	if ks.Has(key) {
		return types.CodeKVAlreadyExists
	}
	ks.Set(key, val)
	e.refold()
	return types.CodeKVAdded
}

// ensure returns the KeySet to mutate plus the canonical key name, creating
// the HKEY block with the requested casing when absent.
func (e *Engine) ensure(hkey, key string) (*model.KeySet, string) {
	canonical, ok := e.target(hkey)
	if !ok {
		canonical = hkey
	}
	ks := e.reg.Ensure(canonical)
	if e.mode == types.ModeFold {
		if name, ok := ks.ResolveKey(key); ok {
			return ks, name
		}
	}
	return ks, key
}

// DeleteHKey removes an HKEY block together with all of its kv-pairs.
func (e *Engine) DeleteHKey(hkey string) types.Code {
	canonical, ok := e.target(hkey)
	if !ok {
		return types.CodeHkeyNotRemoved
	}
	e.reg.Delete(canonical)
	e.refold()
	return types.CodeHkeyRemoved
}

// DeleteKey removes key under hkey without checking its value.
func (e *Engine) DeleteKey(hkey, key string) types.Code {
	canonical, ok := e.target(hkey)
	if !ok {
		return types.CodeKeyHkeyNotFound
	}
	ks, _ := e.reg.Get(canonical)
	name, ok := e.resolveKey(ks, key)
	if !ok {
		return types.CodeKeyNotFound
	}
	ks.Delete(name)
	e.refold()
	return types.CodeKeyRemoved
}

// DeleteKeyValue removes key under hkey only when its stored value equals
// val; on a mismatch the key is retained.
func (e *Engine) DeleteKeyValue(hkey, key, val string) types.Code {
	canonical, ok := e.target(hkey)
	if !ok {
		return types.CodeKVHkeyNotFound
	}
	ks, _ := e.reg.Get(canonical)
	name, ok := e.resolveKey(ks, key)
	if !ok {
		return types.CodeKVNotFound
	}
	stored, _ := ks.Get(name)
	if !e.sameVal(stored, val) {
		return types.CodeValueMismatch
	}
	ks.Delete(name)
	e.refold()
	return types.CodeKVRemoved
}

// RenameHKey renames an HKEY block. The renamed entry re-appends at the end
// of the ordering; old==new is a no-op, not an error.
func (e *Engine) RenameHKey(old, to string) types.Code {
	if old == to {
		return types.CodeHkeyNotUpdated
	}
	canonical, ok := e.target(old)
	if !ok {
		return types.CodeHkeyNotFound
	}
	e.reg.Rename(canonical, to)
	e.refold()
	return types.CodeHkeyUpdated
}

// RenameKey renames key under hkey. The renamed key re-appends at the end of
// its KeySet; old==new is a no-op, not an error.
func (e *Engine) RenameKey(hkey, old, to string) types.Code {
	if old == to {
		return types.CodeKeyNotUpdated
	}
	canonical, ok := e.target(hkey)
	if !ok {
		return types.CodeRenKeyNotFound
	}
	ks, _ := e.reg.Get(canonical)
	name, ok := e.resolveKey(ks, old)
	if !ok {
		return types.CodeRenKeyNotFound
	}
	ks.Rename(name, to)
	e.refold()
	return types.CodeKeyUpdated
}

// SetValue updates the value stored for key under hkey. A missing key (or
// HKEY block) is created with the new value and reported as a key-set, not
// an error; an identical value is a no-op.
func (e *Engine) SetValue(hkey, key, val string) types.Code {
	canonical, ok := e.target(hkey)
	if !ok {
		e.reg.Ensure(hkey).Set(key, val)
		e.refold()
		return types.CodeValKeySet
	}
	ks, _ := e.reg.Get(canonical)
	name, ok := e.resolveKey(ks, key)
	if !ok {
		ks.Set(key, val)
		e.refold()
		return types.CodeValKeySet
	}
	stored, _ := ks.Get(name)
	if e.sameVal(stored, val) {
		return types.CodeValNotUpdated
	}
	ks.Set(name, val)
	e.refold()
	return types.CodeValUpdated
}

func (e *Engine) resolveKey(ks *model.KeySet, key string) (string, bool) {
	if e.mode == types.ModeFold {
		return ks.ResolveKey(key)
	}
	if ks.Has(key) {
		return key, true
	}
	return "", false
}
