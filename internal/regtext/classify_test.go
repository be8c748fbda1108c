package regtext

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind LineKind
		key  string
		val  string
	}{
		{"blank", "", LineBlank, "", ""},
		{"hkey", `[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`, LineHKey, "", ""},
		{"default", `@="Castor"`, LineDefault, "@", `"Castor"`},
		{"default bare", `@=dword:00000001`, LineDefault, "@", "dword:00000001"},
		{"quoted", `"InstallPath"="C:\\Vendor"`, LineQuoted, "InstallPath", `"C:\\Vendor"`},
		{"bare dword", `"Nodes"=dword:00000001`, LineBare, "Nodes", "dword:00000001"},
		{"continued", `"Blob"=hex:30,82,\`, LineContinued, "Blob", "hex:30,82,"},
		{"continuation body line is not a value", "  02,82,01,\\", LineStray, "", ""},
		{"stray", "; comment", LineStray, "", ""},
		{"bracket only at start", "[unterminated", LineStray, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := Classify(tt.line)
			if tok.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Key != tt.key {
				t.Errorf("key = %q, want %q", tok.Key, tt.key)
			}
			if tok.Val != tt.val {
				t.Errorf("val = %q, want %q", tok.Val, tt.val)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// A trailing backslash must win over the quoted and bare shapes, and a
	// closing quote must win over bare.
	if tok := Classify(`"K"="V"\`); tok.Kind != LineContinued {
		t.Fatalf("continued line classified as %v", tok.Kind)
	}
	if tok := Classify(`"K"="V"`); tok.Kind != LineQuoted {
		t.Fatalf("quoted line classified as %v", tok.Kind)
	}
	if tok := Classify(`"K"=V`); tok.Kind != LineBare {
		t.Fatalf("bare line classified as %v", tok.Kind)
	}
}

func TestClassifyHKeyCarriesBrackets(t *testing.T) {
	line := `[HKEY_LOCAL_MACHINE\SOFTWARE]`
	tok := Classify(line)
	if tok.HKey != line {
		t.Fatalf("hkey = %q, want the full bracketed line", tok.HKey)
	}
}
