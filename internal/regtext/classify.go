package regtext

import (
	"regexp"
	"strings"
)

// LineKind identifies what a single physical source line encodes.
type LineKind int

const (
	LineBlank     LineKind = iota // empty after trimming
	LineHKey                      // [HKEY_...] scope header
	LineDefault                   // @=<value>
	LineContinued                 // "KEY"=VALUE\ opening a multi-line value
	LineQuoted                    // "KEY"="VALUE"
	LineBare                      // "KEY"=VALUE
	LineStray                     // none of the above
)

// Token is the classifier's extraction from one line. HKey carries the full
// bracketed line; Key/Val carry the split right-hand side for value lines.
type Token struct {
	Kind LineKind
	HKey string
	Key  string
	Val  string
}

// The continuation pattern is a stricter superset-match of the quoted and
// bare patterns, so it must be tried first; quoted likewise before bare.
var (
	reContinued = regexp.MustCompile(`^"(?P<key>.+)"=(?P<val>.*)\\$`)
	reQuoted    = regexp.MustCompile(`^"(?P<key>.+)"="(?P<val>.*)"$`)
	reBare      = regexp.MustCompile(`^"(?P<key>.+)"=(?P<val>.*)$`)
)

// Classify decides which of the line shapes a raw (right-trimmed) source
// line encodes and extracts its parts. Precedence: HKEY, default value,
// continued, quoted, bare. Anything else is blank or stray.
func Classify(line string) Token {
	if line == "" {
		return Token{Kind: LineBlank}
	}
	if strings.HasPrefix(line, KeyOpenBracket) && strings.HasSuffix(line, KeyCloseBracket) {
		return Token{Kind: LineHKey, HKey: line}
	}
	if strings.HasPrefix(line, DefaultValuePrefix) {
		return Token{
			Kind: LineDefault,
			Key:  DefaultValuePrefix[:1],
			Val:  line[strings.Index(line, ValueAssignment)+1:],
		}
	}
	if m := reContinued.FindStringSubmatch(line); m != nil {
		return Token{Kind: LineContinued, Key: m[1], Val: m[2]}
	}
	if m := reQuoted.FindStringSubmatch(line); m != nil {
		// The stored value keeps its surrounding quotes.
		return Token{Kind: LineQuoted, Key: m[1], Val: Quote + m[2] + Quote}
	}
	if m := reBare.FindStringSubmatch(line); m != nil {
		return Token{Kind: LineBare, Key: m[1], Val: m[2]}
	}
	return Token{Kind: LineStray}
}
