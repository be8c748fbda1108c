package types

// Code is a machine-readable result code. The vocabulary is fixed: downstream
// automation branches on these strings to decide idempotence and whether a
// change happened.
type Code string

const (
	// HKEY existence checks.
	CodeHkeyExists        Code = "hkey_exists"
	CodeHkeyNotExists     Code = "hkey_notexists"
	CodeHkeyExistsFold    Code = "hkey_exists_nocase"
	CodeHkeyNotExistsFold Code = "hkey_notexists_nocase"

	// Key existence checks.
	CodeKeyExists    Code = "hkey_k_exists"
	CodeKeyNotExists Code = "hkey_k_notexists"

	// Value confirmation.
	CodeValueConfirmed Code = "hkey_kv_value_confirmed"
	CodeValueMismatch  Code = "hkey_kv_value_mismatch"
	CodeKVKeyNotExists Code = "hkey_kv_key_not_exists"

	// Value read.
	CodeValueRead Code = "hkey_kv_value_read"

	// Additions.
	CodeHkeyAdded         Code = "hkey_added"
	CodeHkeyAlreadyExists Code = "hkey_already_exists"
	CodeKeyAdded          Code = "hkey_k_added"
	CodeKeyAlreadyExists  Code = "hkey_k_already_exists"
	CodeKVAdded           Code = "hkey_kv_added"
	CodeKVAlreadyExists   Code = "hkey_kv_already_exists"

	// Deletions.
	CodeHkeyRemoved     Code = "hkey_removed"
	CodeHkeyNotRemoved  Code = "hkey_notremoved"
	CodeKeyRemoved      Code = "hkey_k_removed"
	CodeKeyNotFound     Code = "hkey_k_keynotfound"
	CodeKeyHkeyNotFound Code = "hkey_k_hkeynotfound"
	CodeKVRemoved       Code = "hkey_kv_removed"
	CodeKVNotFound      Code = "hkey_kv_keynotfound"
	CodeKVHkeyNotFound  Code = "hkey_kv_hkeynotfound"

	// Renames.
	CodeHkeyUpdated    Code = "hkey_updated"
	CodeHkeyNotUpdated Code = "hkey_notupdated"
	CodeHkeyNotFound   Code = "hkey_notfound"
	CodeKeyUpdated     Code = "key_updated"
	CodeKeyNotUpdated  Code = "key_notupdated"
	CodeRenKeyNotFound Code = "key_notfound"

	// Value updates.
	CodeValUpdated    Code = "val_updated"
	CodeValNotUpdated Code = "val_notupdated"
	CodeValKeySet     Code = "val_keyset"
)

// codeMessages maps every code to its fixed human-readable message.
var codeMessages = map[Code]string{
	CodeHkeyExists:        "HKEY exists.",
	CodeHkeyNotExists:     "HKEY does not exist.",
	CodeHkeyExistsFold:    "HKEY exists (case-insensitive match).",
	CodeHkeyNotExistsFold: "HKEY does not exist (case-insensitive lookup).",

	CodeKeyExists:    "The key under HKEY exists.",
	CodeKeyNotExists: "The key under HKEY was NOT found.",

	CodeValueConfirmed: "HKEY kv-pair, as queried, exists.",
	CodeValueMismatch:  "HKEY key has a different value than queried.",
	CodeKVKeyNotExists: "HKEY kv-pair, as queried, was NOT found.",

	CodeValueRead: "The value belonging to key under HKEY was read.",

	CodeHkeyAdded:         "HKEY successfully added.",
	CodeHkeyAlreadyExists: "HKEY already exists.",
	CodeKeyAdded:          "The key under HKEY was successfully added.",
	CodeKeyAlreadyExists:  "The key under HKEY already exists.",
	CodeKVAdded:           "HKEY kv-pair successfully added.",
	CodeKVAlreadyExists:   "HKEY kv-pair already exists.",

	CodeHkeyRemoved:     "HKEY successfully deleted (including any existing kv-pairs!)",
	CodeHkeyNotRemoved:  "HKEY, as queried, was NOT found in the registry",
	CodeKeyRemoved:      "The key under HKEY was successfully deleted (value not checked).",
	CodeKeyNotFound:     "The key under HKEY was NOT found.",
	CodeKeyHkeyNotFound: "The HKEY was NOT found.",
	CodeKVRemoved:       "The key-value under HKEY was successfully deleted (value checked).",
	CodeKVNotFound:      "The key under HKEY was not found.",
	CodeKVHkeyNotFound:  "The HKEY was NOT found.",

	CodeHkeyUpdated:    "The HKEY entry was renamed.",
	CodeHkeyNotUpdated: "The HKEY entry was not updated (old/new HKEY same).",
	CodeHkeyNotFound:   "The HKEY was NOT found.",
	CodeKeyUpdated:     "The key under HKEY was renamed.",
	CodeKeyNotUpdated:  "The key under HKEY was not updated (old/new key same).",
	CodeRenKeyNotFound: "The key under HKEY was NOT found.",

	CodeValUpdated:    "The value belonging to key under HKEY was updated.",
	CodeValNotUpdated: "The value belonging to key under HKEY was not updated (old/new val same).",
	CodeValKeySet:     "The key under HKEY did not exist; it was created with the requested value.",
}

// Message returns the fixed message for c, or the code itself when unknown.
func (c Code) Message() string {
	if m, ok := codeMessages[c]; ok {
		return m
	}
	return string(c)
}

// mutated is the set of codes that indicate the in-memory model changed and
// must be serialized back to disk.
var mutated = map[Code]bool{
	CodeHkeyAdded:   true,
	CodeKeyAdded:    true,
	CodeKVAdded:     true,
	CodeHkeyRemoved: true,
	CodeKeyRemoved:  true,
	CodeKVRemoved:   true,
	CodeHkeyUpdated: true,
	CodeKeyUpdated:  true,
	CodeValUpdated:  true,
	CodeValKeySet:   true,
}

// Mutated reports whether c indicates a successful mutation.
func (c Code) Mutated() bool { return mutated[c] }
