// Package types defines the shared vocabulary of the regedit module: the
// request/response shapes exchanged with callers, the verb and lookup-mode
// enumerations, the result-code taxonomy every engine operation reports
// through, and the typed error categories for filesystem and configuration
// failures.
//
// Result codes are stable strings. Automation keys off them for idempotence
// and change detection, so they must never be renamed or reused.
package types
