package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSlotRoundTrip(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "token"))

	got, err := slot.Load()
	require.NoError(t, err)
	require.Equal(t, "", got, "empty slot should load as empty string")

	require.NoError(t, slot.Store("T1"))

	got, err = slot.Load()
	require.NoError(t, err)
	require.Equal(t, "T1", got)
}

func TestFileSlotPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	slot := NewFileSlot(path)
	require.NoError(t, slot.Store("T1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileSlotClearIsIdempotent(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, slot.Store("T1"))

	require.NoError(t, slot.Clear())
	require.NoError(t, slot.Clear(), "clearing an empty slot must be a no-op")

	got, err := slot.Load()
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestFileSlotTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("T1\n"), 0600))

	got, err := NewFileSlot(path).Load()
	require.NoError(t, err)
	require.Equal(t, "T1", got)
}
