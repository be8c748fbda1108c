package regtext

import (
	"bytes"

	"github.com/mathworld/regedit/internal/model"
	"github.com/mathworld/regedit/internal/writer"
	"github.com/mathworld/regedit/pkg/types"
)

// Serialize renders the document back to file bytes: preamble, one blank
// separator line, then each HKEY block in iteration order with a trailing
// blank line. Values are emitted verbatim, so continuation values reproduce
// their original physical lines.
func Serialize(doc *Document) []byte {
	var buf bytes.Buffer
	eol := doc.EOL
	if eol == "" {
		eol = LF
	}

	if doc.Preamble != "" {
		buf.WriteString(doc.Preamble)
		buf.WriteString(eol)
		buf.WriteString(eol)
	}

	for _, hkey := range doc.Registry.HKeys() {
		ks, _ := doc.Registry.Get(hkey)
		buf.WriteString(hkey)
		buf.WriteString(eol)
		for _, name := range ks.Names() {
			val, _ := ks.Get(name)
			if name == model.DefaultKey {
				buf.WriteString(DefaultValuePrefix)
			} else {
				buf.WriteString(Quote)
				buf.WriteString(name)
				buf.WriteString(Quote)
				buf.WriteString(ValueAssignment)
			}
			buf.WriteString(val)
			buf.WriteString(eol)
		}
		buf.WriteString(eol)
	}
	return buf.Bytes()
}

// WriteFile serializes doc and writes it to path through the atomic sink, so
// a failed write never leaves a truncated file behind.
func WriteFile(path string, doc *Document) error {
	w := &writer.FileWriter{Path: path}
	if err := w.WriteReg(Serialize(doc)); err != nil {
		return &types.Error{Kind: types.ErrKindNotWritable, Msg: "registry file not writable: " + path, Err: err}
	}
	return nil
}
