// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDirectory(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadReadsFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ContactEmailKey), []byte("ops@example.com\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("  value  "), 0o644))

	got, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "ops@example.com", got[ContactEmailKey])
	assert.Equal(t, "value", got["other"])
}

func TestLoadSkipsHiddenAndEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), []byte("   \n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestContactEmail(t *testing.T) {
	assert.Equal(t, "ops@example.com", ContactEmail(map[string]string{ContactEmailKey: "ops@example.com"}))
	assert.Empty(t, ContactEmail(nil))
	assert.Empty(t, ContactEmail(map[string]string{}))
}
