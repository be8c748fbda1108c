package regtext

const (
	// ============================================================================
	// .reg File Format Tokens
	// ============================================================================

	// KeyOpenBracket marks the start of an HKEY scope line
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of an HKEY scope line
	KeyCloseBracket = "]"

	// ValueAssignment separates key names from their values
	ValueAssignment = "="

	// DefaultValuePrefix marks the default (unnamed) value of an HKEY
	DefaultValuePrefix = "@="

	// Quote is the double-quote character wrapping key names and string values
	Quote = "\""

	// ContinuationSuffix is the trailing backslash that joins physical lines
	// of a multi-line value
	ContinuationSuffix = "\\"

	// ============================================================================
	// Line Endings
	// ============================================================================

	// CRLF is the Windows line ending (carriage return + line feed)
	CRLF = "\r\n"

	// CR is the carriage return character
	CR = "\r"

	// LF is the line feed character
	LF = "\n"

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingUTF8 is the identifier for UTF-8 encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 is the identifier for the Windows-1252 code page
	// (the local encoding hivex and regedit exports often arrive in)
	EncodingWindows1252 = "Windows-1252"

	// ============================================================================
	// UTF-16 Encoding Constants
	// ============================================================================

	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes
	UTF16CodeUnitSize = 2
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)
