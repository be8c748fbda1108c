// Package testutil provides fixture helpers for registry text files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleReg is a small but representative export: banner preamble, default
// value, quoted and bare values, and a three-line continuation value.
const SampleReg = "Windows Registry Editor Version 5.00\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\MicroStrategy\\DSS Server]\n" +
	"@=\"Castor\"\n" +
	"\"InstallPath\"=\"C:\\\\MicroStrategy\"\n" +
	"\"NumberOfNodesInCluster\"=dword:00000001\n" +
	"\"CertificateBlob\"=hex:30,82,01,0a,\\\n" +
	"  02,82,01,01,\\\n" +
	"  00,c2,94,6f\n" +
	"\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\MicroStrategy\\Licenses]\n" +
	"\"MetaDataVersion\"=\"3.52\"\n" +
	"\n"

// WriteReg writes content to name inside a test temp dir and returns the
// full path.
func WriteReg(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// ReadFile returns the file's contents, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
