package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathworld/regedit/internal/model"
	"github.com/mathworld/regedit/pkg/types"
)

func sampleRegistry() *model.Registry {
	r := model.NewRegistry()
	ks := r.Ensure(`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`)
	ks.Set("Path", `"C:\\Vendor"`)
	ks.Set("Nodes", "dword:00000001")
	r.Ensure(`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor\Licenses]`).Set("Version", `"3.52"`)
	return r
}

func TestHKeyExists(t *testing.T) {
	e := New(sampleRegistry(), types.ModeExact)
	assert.Equal(t, types.CodeHkeyExists, e.HKeyExists(`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`))
	assert.Equal(t, types.CodeHkeyNotExists, e.HKeyExists(`[hkey_local_machine\software\vendor]`))
}

func TestHKeyExistsFold(t *testing.T) {
	e := New(sampleRegistry(), types.ModeFold)
	assert.Equal(t, types.CodeHkeyExistsFold, e.HKeyExists(`[hkey_local_machine\software\vendor]`))
	assert.Equal(t, types.CodeHkeyNotExistsFold, e.HKeyExists(`[hkey_local_machine\software\other]`))
}

func TestKeyExists(t *testing.T) {
	e := New(sampleRegistry(), types.ModeExact)
	assert.Equal(t, types.CodeKeyExists, e.KeyExists(`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`, "Path"))
	assert.Equal(t, types.CodeKeyNotExists, e.KeyExists(`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`, "path"))
	assert.Equal(t, types.CodeHkeyNotExists, e.KeyExists("[missing]", "Path"))
}

func TestConfirmValue(t *testing.T) {
	e := New(sampleRegistry(), types.ModeExact)
	hkey := `[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`
	assert.Equal(t, types.CodeValueConfirmed, e.ConfirmValue(hkey, "Nodes", "dword:00000001"))
	assert.Equal(t, types.CodeValueMismatch, e.ConfirmValue(hkey, "Nodes", "dword:00000002"))
	assert.Equal(t, types.CodeKVKeyNotExists, e.ConfirmValue(hkey, "Missing", "x"))
	assert.Equal(t, types.CodeHkeyNotExists, e.ConfirmValue("[missing]", "Nodes", "x"))
}

func TestGetValueKeepsStoredCasing(t *testing.T) {
	e := New(sampleRegistry(), types.ModeFold)
	v, code := e.GetValue(`[hkey_local_machine\software\vendor]`, "path")
	require.Equal(t, types.CodeValueRead, code)
	assert.Equal(t, `"C:\\Vendor"`, v)
}

func TestAddHKeyIdempotence(t *testing.T) {
	e := New(sampleRegistry(), types.ModeExact)
	assert.Equal(t, types.CodeHkeyAdded, e.AddHKey("[NEW]"))
	assert.Equal(t, types.CodeHkeyAlreadyExists, e.AddHKey("[NEW]"))
}

func TestAddKeyValueIdempotence(t *testing.T) {
	r := sampleRegistry()
	e := New(r, types.ModeExact)
	hkey := `[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`

	assert.Equal(t, types.CodeKVAdded, e.AddKeyValue(hkey, "Fresh", "dword:00000000"))
	// The second add is a no-op even with a different value: add never
	// overwrites.
	assert.Equal(t, types.CodeKVAlreadyExists, e.AddKeyValue(hkey, "Fresh", "dword:11111111"))
	ks, _ := r.Get(hkey)
	v, _ := ks.Get("Fresh")
	assert.Equal(t, "dword:00000000", v)
}

func TestAddKeyValueCreatesHKey(t *testing.T) {
	r := sampleRegistry()
	e := New(r, types.ModeExact)
	assert.Equal(t, types.CodeKVAdded, e.AddKeyValue("[NEW]", "K", "V"))
	assert.True(t, r.Has("[NEW]"))
}

func TestDeleteHKey(t *testing.T) {
	r := sampleRegistry()
	e := New(r, types.ModeExact)
	assert.Equal(t, types.CodeHkeyRemoved, e.DeleteHKey(`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`))
	assert.Equal(t, types.CodeHkeyNotRemoved, e.DeleteHKey(`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`))
	assert.Equal(t, 1, r.Len())
}

func TestDeleteKeyValueChecked(t *testing.T) {
	r := sampleRegistry()
	e := New(r, types.ModeExact)
	hkey := `[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`

	assert.Equal(t, types.CodeValueMismatch, e.DeleteKeyValue(hkey, "Nodes", "dword:99999999"))
	ks, _ := r.Get(hkey)
	assert.True(t, ks.Has("Nodes"), "mismatch must retain the key")

	assert.Equal(t, types.CodeKVRemoved, e.DeleteKeyValue(hkey, "Nodes", "dword:00000001"))
	assert.False(t, ks.Has("Nodes"))

	assert.Equal(t, types.CodeKVNotFound, e.DeleteKeyValue(hkey, "Nodes", "dword:00000001"))
	assert.Equal(t, types.CodeKVHkeyNotFound, e.DeleteKeyValue("[missing]", "Nodes", "x"))
}

func TestRenameHKey(t *testing.T) {
	r := sampleRegistry()
	e := New(r, types.ModeExact)
	old := `[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`

	assert.Equal(t, types.CodeHkeyNotUpdated, e.RenameHKey(old, old))
	assert.Equal(t, types.CodeHkeyNotFound, e.RenameHKey("[missing]", "[other]"))

	assert.Equal(t, types.CodeHkeyUpdated, e.RenameHKey(old, "[RENAMED]"))
	// Rename is delete-then-insert, so the entry re-appends at the end.
	hkeys := r.HKeys()
	assert.Equal(t, "[RENAMED]", hkeys[len(hkeys)-1])
}

func TestRenameKey(t *testing.T) {
	r := sampleRegistry()
	e := New(r, types.ModeExact)
	hkey := `[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`

	assert.Equal(t, types.CodeKeyNotUpdated, e.RenameKey(hkey, "Path", "Path"))
	assert.Equal(t, types.CodeRenKeyNotFound, e.RenameKey(hkey, "Missing", "Other"))
	assert.Equal(t, types.CodeKeyUpdated, e.RenameKey(hkey, "Path", "InstallPath"))

	ks, _ := r.Get(hkey)
	assert.Equal(t, []string{"Nodes", "InstallPath"}, ks.Names())
}

func TestSetValue(t *testing.T) {
	r := sampleRegistry()
	e := New(r, types.ModeExact)
	hkey := `[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`

	// Identical value is a no-op.
	assert.Equal(t, types.CodeValNotUpdated, e.SetValue(hkey, "Nodes", "dword:00000001"))
	assert.Equal(t, types.CodeValUpdated, e.SetValue(hkey, "Nodes", "dword:00000002"))

	// A missing key is created, not an error.
	assert.Equal(t, types.CodeValKeySet, e.SetValue(hkey, "Fresh", `"x"`))
	ks, _ := r.Get(hkey)
	assert.True(t, ks.Has("Fresh"))

	// So is a missing HKEY.
	assert.Equal(t, types.CodeValKeySet, e.SetValue("[NEW]", "K", "V"))
	assert.True(t, r.Has("[NEW]"))
}

func TestFoldIndexRefreshedAfterMutation(t *testing.T) {
	e := New(sampleRegistry(), types.ModeFold)
	require.Equal(t, types.CodeHkeyAdded, e.AddHKey("[MixedCase]"))
	// A case-insensitive read in the same run observes the mutation.
	assert.Equal(t, types.CodeHkeyExistsFold, e.HKeyExists("[mixedcase]"))
}

func TestFoldModeMutatesStoredCasing(t *testing.T) {
	r := sampleRegistry()
	e := New(r, types.ModeFold)
	assert.Equal(t, types.CodeHkeyRemoved, e.DeleteHKey(`[hkey_local_machine\software\vendor]`))
	assert.False(t, r.Has(`[HKEY_LOCAL_MACHINE\SOFTWARE\Vendor]`))
}
