package regtext

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/mathworld/regedit/internal/model"
	"github.com/mathworld/regedit/pkg/types"
)

// Options controls parsing behavior.
type Options struct {
	// Encoding declares the input encoding when no BOM is present.
	// Supported: "" / "UTF-8", "UTF-16LE", "Windows-1252".
	Encoding string

	// Strict collects a warning for every line the classifier cannot place
	// instead of silently dropping it. Parsing still succeeds either way.
	Strict bool
}

// Document is the parsed form of a registry text export: the preamble blob,
// the ordered registry model, and the line ending style of the source.
type Document struct {
	Preamble string
	Registry *model.Registry
	EOL      string
}

// ParseFile reads and parses the registry file at path. A missing file is
// the only filesystem failure mode; malformed content never errors.
func ParseFile(path string, opts Options) (*Document, []types.Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, &types.Error{Kind: types.ErrKindNotFound, Msg: "registry file not found: " + path, Err: err}
		}
		return nil, nil, &types.Error{Kind: types.ErrKindNotFound, Msg: "registry file not readable: " + path, Err: err}
	}
	return Parse(data, opts)
}

// Parse builds the document from raw file bytes. It replays the classifier
// line by line with a current-HKEY cursor; value lines attach to the most
// recent HKEY. Lines the classifier cannot place are dropped (permissive
// default) or reported as warnings (strict).
func Parse(data []byte, opts Options) (*Document, []types.Warning, error) {
	decoded, err := decodeInput(data, opts.Encoding)
	if err != nil {
		return nil, nil, &types.Error{Kind: types.ErrKindFormat, Msg: "undecodable registry file", Err: err}
	}

	text := string(decoded)
	doc := &Document{Registry: model.NewRegistry(), EOL: LF}
	if strings.Contains(text, CRLF) {
		doc.EOL = CRLF
	}

	lines := strings.Split(text, LF)
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], CR)
	}

	var warnings []types.Warning
	warn := func(line int, text, reason string) {
		if opts.Strict {
			warnings = append(warnings, types.Warning{Line: line, Text: text, Reason: reason})
		}
	}

	var cur *model.KeySet
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t")
		tok := Classify(line)

		switch tok.Kind {
		case LineBlank:
			continue
		case LineHKey:
			// A duplicate HKEY line starts a fresh KeySet; the later one wins.
			cur = model.NewKeySet()
			doc.Registry.Put(tok.HKey, cur)
		case LineDefault, LineQuoted, LineBare:
			if cur == nil {
				warn(i+1, line, "value before first HKEY")
				continue
			}
			cur.Set(tok.Key, tok.Val)
		case LineContinued:
			if cur == nil {
				warn(i+1, line, "value before first HKEY")
				continue
			}
			// Join the physical lines with their trailing backslash markers
			// kept verbatim, so serialization reproduces the original breaks.
			parts := []string{tok.Val + ContinuationSuffix}
			j := i + 1
			for ; j < len(lines); j++ {
				next := strings.TrimRight(lines[j], " \t")
				parts = append(parts, next)
				if !strings.HasSuffix(next, ContinuationSuffix) {
					break
				}
			}
			cur.Set(tok.Key, strings.Join(parts, doc.EOL))
			i = j
		case LineStray:
			// Anything before the first HKEY is preamble, not stray content.
			if cur != nil {
				warn(i+1, line, "unrecognized line")
			}
		}
	}

	doc.Preamble = preamble(lines, doc.EOL)
	return doc, warnings, nil
}

// preamble concatenates the whitespace-trimmed lines preceding the first
// HKEY line, with trailing blanks dropped (the serializer re-emits exactly
// one separating blank line).
func preamble(lines []string, eol string) string {
	var kept []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, KeyOpenBracket) {
			break
		}
		kept = append(kept, trimmed)
	}
	for len(kept) > 0 && kept[len(kept)-1] == "" {
		kept = kept[:len(kept)-1]
	}
	return strings.Join(kept, eol)
}
