package regtext

import (
	"strings"
	"testing"

	"github.com/mathworld/regedit/pkg/types"
)

const sample = "Windows Registry Editor Version 5.00\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Vendor]\n" +
	"@=\"Default\"\n" +
	"\"Path\"=\"C:\\\\Vendor\"\n" +
	"\"Nodes\"=dword:00000001\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Vendor\\Licenses]\n" +
	"\"Version\"=\"3.52\"\n" +
	"\n"

func TestParse(t *testing.T) {
	doc, warnings, err := Parse([]byte(sample), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if doc.Preamble != "Windows Registry Editor Version 5.00" {
		t.Errorf("preamble = %q", doc.Preamble)
	}

	hkeys := doc.Registry.HKeys()
	want := []string{
		`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`,
		`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor\Licenses]`,
	}
	if len(hkeys) != len(want) {
		t.Fatalf("got %d hkeys, want %d", len(hkeys), len(want))
	}
	for i := range want {
		if hkeys[i] != want[i] {
			t.Errorf("hkey %d = %q, want %q", i, hkeys[i], want[i])
		}
	}

	ks, ok := doc.Registry.Get(want[0])
	if !ok {
		t.Fatal("vendor hkey missing")
	}
	if got, _ := ks.Get("@"); got != `"Default"` {
		t.Errorf("default value = %q", got)
	}
	if got, _ := ks.Get("Path"); got != `"C:\\Vendor"` {
		t.Errorf("Path = %q", got)
	}
	if got, _ := ks.Get("Nodes"); got != "dword:00000001" {
		t.Errorf("Nodes = %q", got)
	}
}

func TestParseContinuation(t *testing.T) {
	input := "[X]\n" +
		"\"Blob\"=hex:30,82,01,\\\n" +
		"  02,82,01,01,\\\n" +
		"  00,c2,94,6f\n" +
		"\n"
	doc, _, err := Parse([]byte(input), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ks, _ := doc.Registry.Get("[X]")
	val, ok := ks.Get("Blob")
	if !ok {
		t.Fatal("Blob missing")
	}
	if strings.Count(val, "\n") != 2 {
		t.Fatalf("want 2 embedded newlines, got %d in %q", strings.Count(val, "\n"), val)
	}
	lines := strings.Split(val, "\n")
	if !strings.HasSuffix(lines[0], "\\") || !strings.HasSuffix(lines[1], "\\") {
		t.Errorf("continuation markers lost: %q", val)
	}
	if strings.HasSuffix(lines[2], "\\") {
		t.Errorf("terminal line should not carry a marker: %q", lines[2])
	}
	if ks.Len() != 1 {
		t.Errorf("continuation body leaked extra keys: %v", ks.Names())
	}
}

func TestParseDuplicateHKeyWins(t *testing.T) {
	input := "[X]\n\"A\"=\"1\"\n\n[X]\n\"B\"=\"2\"\n\n"
	doc, _, err := Parse([]byte(input), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Registry.Len() != 1 {
		t.Fatalf("duplicate hkey not collapsed: %v", doc.Registry.HKeys())
	}
	ks, _ := doc.Registry.Get("[X]")
	if ks.Has("A") || !ks.Has("B") {
		t.Errorf("later duplicate block should win: %v", ks.Names())
	}
}

func TestParseStrictWarnings(t *testing.T) {
	input := "banner\n[X]\ngarbage line\n\"K\"=\"V\"\n"

	_, warnings, err := Parse([]byte(input), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("permissive mode must not warn: %v", warnings)
	}

	_, warnings, err = Parse([]byte(input), Options{Strict: true})
	if err != nil {
		t.Fatalf("Parse strict: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("want 1 warning, got %v", warnings)
	}
	if warnings[0].Line != 3 || warnings[0].Text != "garbage line" {
		t.Errorf("warning = %+v", warnings[0])
	}
}

func TestParseValueBeforeHKey(t *testing.T) {
	input := "\"K\"=\"V\"\n[X]\n"
	doc, warnings, err := Parse([]byte(input), Options{Strict: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Registry.Len() != 1 {
		t.Fatalf("hkeys = %v", doc.Registry.HKeys())
	}
	if len(warnings) != 1 || warnings[0].Reason != "value before first HKEY" {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestParseUTF16LE(t *testing.T) {
	text := "[X]\n\"K\"=\"V\"\n"
	encoded := append([]byte{0xFF, 0xFE}, utf16leBytes(text)...)
	doc, _, err := Parse(encoded, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ks, ok := doc.Registry.Get("[X]")
	if !ok {
		t.Fatal("hkey missing after UTF-16LE decode")
	}
	if got, _ := ks.Get("K"); got != `"V"` {
		t.Errorf("K = %q", got)
	}
}

func TestParseUnsupportedEncoding(t *testing.T) {
	_, _, err := Parse([]byte("[X]\n"), Options{Encoding: "EBCDIC"})
	if !types.IsKind(err, types.ErrKindFormat) {
		t.Fatalf("want format error, got %v", err)
	}
}

func TestParseCRLFDetection(t *testing.T) {
	doc, _, err := Parse([]byte("[X]\r\n\"K\"=\"V\"\r\n\r\n"), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.EOL != CRLF {
		t.Fatalf("EOL = %q, want CRLF", doc.EOL)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, _, err := ParseFile("does/not/exist.reg", Options{})
	if !types.IsKind(err, types.ErrKindNotFound) {
		t.Fatalf("want not-found error, got %v", err)
	}
}

// utf16leBytes encodes ASCII test input as UTF-16LE without a BOM.
func utf16leBytes(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), 0)
	}
	return out
}
