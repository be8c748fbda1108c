package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // undecodable input (bad or unsupported encoding)
	ErrKindNotFound                   // source registry file missing
	ErrKindNotWritable                // destination cannot be written
	ErrKindConfig                     // unsatisfiable verb/field combination
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is (or wraps) a typed Error of kind k.
func IsKind(err error, k ErrKind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == k
}

// Sentinels commonly returned by implementations.
var (
	// ErrFileNotFound indicates the source registry file does not exist.
	ErrFileNotFound = &Error{Kind: ErrKindNotFound, Msg: "registry file not found"}
	// ErrFileNotWritable indicates the destination could not be written.
	ErrFileNotWritable = &Error{Kind: ErrKindNotWritable, Msg: "registry file not writable"}
	// ErrBadEncoding indicates the input could not be decoded with the declared encoding.
	ErrBadEncoding = &Error{Kind: ErrKindFormat, Msg: "undecodable registry file"}
	// ErrBadRequest indicates no decision-table row matches the supplied fields.
	ErrBadRequest = &Error{Kind: ErrKindConfig, Msg: "unsatisfiable verb/field combination"}
)

// -----------------------------------------------------------------------------
// Verbs & Lookup Modes
// -----------------------------------------------------------------------------

// Verb enumerates the operation categories a request may carry.
type Verb string

const (
	VerbChk Verb = "chk"
	VerbGet Verb = "get"
	VerbAdd Verb = "add"
	VerbDel Verb = "del"
	VerbUpd Verb = "upd"
)

// Valid reports whether v is one of the five known verbs.
func (v Verb) Valid() bool {
	switch v {
	case VerbChk, VerbGet, VerbAdd, VerbDel, VerbUpd:
		return true
	}
	return false
}

// Mode selects how hkey, key and value strings are compared during lookups.
// It is threaded explicitly through the codec and every engine call; there is
// no process-wide switch.
type Mode int

const (
	// ModeExact compares strings byte-for-byte with their stored casing.
	ModeExact Mode = iota
	// ModeFold compares lower-cased strings against the case-folded index.
	ModeFold
)

func (m Mode) String() string {
	if m == ModeFold {
		return "ignore-case"
	}
	return "exact"
}

// -----------------------------------------------------------------------------
// Request / Response
// -----------------------------------------------------------------------------

// Request describes one invocation: which file to edit, which verb to apply,
// and the sparse optional fields the resolver uses to pick an operation.
type Request struct {
	Verb    Verb   `json:"verb"`
	File    string `json:"registry_filename"`
	OutFile string `json:"registry_filename_out,omitempty"` // defaults to File
	HKey    string `json:"hkey"`
	Key     string `json:"key,omitempty"`
	Val     string `json:"val,omitempty"`
	NewHKey string `json:"new_hkey,omitempty"`
	NewKey  string `json:"new_key,omitempty"`
	NewVal  string `json:"new_val,omitempty"`

	IgnoreCase bool   `json:"ignore_case,omitempty"`
	Strict     bool   `json:"strict,omitempty"`
	Encoding   string `json:"encoding,omitempty"` // "", "UTF-8", "UTF-16LE", "Windows-1252"
	Backup     bool   `json:"backup,omitempty"`
}

// Mode returns the lookup mode implied by the request.
func (r Request) Mode() Mode {
	if r.IgnoreCase {
		return ModeFold
	}
	return ModeExact
}

// Warning records a source line the parser could not classify. Warnings are
// only collected in strict mode; the permissive default drops such lines.
type Warning struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Response reports the outcome of one applied request. Logical non-mutations
// (already-exists, not-found, mismatch, no-op rename) are successful responses
// with Changed=false, never errors.
type Response struct {
	Changed  bool      `json:"changed"`
	Code     Code      `json:"code"`
	Message  string    `json:"message"`
	Value    string    `json:"value,omitempty"` // stored value, for get
	Warnings []Warning `json:"warnings,omitempty"`
}
