// Package resolve maps a requested verb plus the set of supplied optional
// fields onto one concrete engine operation. The mapping is a decision
// table: exactly one row fires per request, and a request matching no row is
// a configuration error, never a guess.
package resolve

import "github.com/mathworld/regedit/pkg/types"

// Op identifies the engine operation selected for a request.
type Op int

const (
	OpHKeyExists Op = iota
	OpKeyExists
	OpConfirmValue
	OpGetValue
	OpAddHKey
	OpAddKey
	OpAddKeyValue
	OpDeleteHKey
	OpDeleteKey
	OpDeleteKeyValue
	OpRenameHKey
	OpRenameKey
	OpSetValue
)

var opNames = map[Op]string{
	OpHKeyExists:     "hkey-exists",
	OpKeyExists:      "key-exists",
	OpConfirmValue:   "confirm-value",
	OpGetValue:       "get-value",
	OpAddHKey:        "add-hkey",
	OpAddKey:         "add-key",
	OpAddKeyValue:    "add-key-value",
	OpDeleteHKey:     "delete-hkey",
	OpDeleteKey:      "delete-key",
	OpDeleteKeyValue: "delete-key-value",
	OpRenameHKey:     "rename-hkey",
	OpRenameKey:      "rename-key",
	OpSetValue:       "set-value",
}

func (o Op) String() string { return opNames[o] }

// Mutating reports whether the operation can modify the model and therefore
// requires serialization on a changed outcome.
func (o Op) Mutating() bool {
	switch o {
	case OpHKeyExists, OpKeyExists, OpConfirmValue, OpGetValue:
		return false
	}
	return true
}

// wildcardVal is the value placeholder that makes add/del value-agnostic.
const wildcardVal = "*"

// Resolve picks the operation for req. Field presence alone drives the
// choice; field contents are the engine's business.
func Resolve(req types.Request) (Op, error) {
	key := req.Key != ""
	val := req.Val != "" && req.Val != wildcardVal

	switch req.Verb {
	case types.VerbChk:
		switch {
		case !key && req.Val == "":
			return OpHKeyExists, nil
		case key && req.Val == "":
			return OpKeyExists, nil
		case key:
			return OpConfirmValue, nil
		}
	case types.VerbGet:
		if key {
			return OpGetValue, nil
		}
	case types.VerbAdd:
		switch {
		case !key && req.Val == "":
			return OpAddHKey, nil
		case key && !val:
			return OpAddKey, nil
		case key:
			return OpAddKeyValue, nil
		}
	case types.VerbDel:
		switch {
		case !key && req.Val == "":
			return OpDeleteHKey, nil
		case key && !val:
			return OpDeleteKey, nil
		case key:
			return OpDeleteKeyValue, nil
		}
	case types.VerbUpd:
		// new_hkey wins over new_key, which wins over new_val; val is the
		// set-value fallback when new_val is absent.
		switch {
		case req.NewHKey != "":
			return OpRenameHKey, nil
		case req.NewKey != "":
			return OpRenameKey, nil
		case key && req.NewVal != "":
			return OpSetValue, nil
		case key && req.Val != "":
			return OpSetValue, nil
		}
	}
	return 0, &types.Error{
		Kind: types.ErrKindConfig,
		Msg:  "no operation matches verb " + string(req.Verb) + " with the supplied fields",
	}
}

// NewValue returns the value a resolved set-value operation should store:
// new_val when supplied, otherwise val.
func NewValue(req types.Request) string {
	if req.NewVal != "" {
		return req.NewVal
	}
	return req.Val
}
