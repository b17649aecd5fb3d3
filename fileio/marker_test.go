package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isaac-mod-manager/core"
)

func modFolder(t *testing.T, disabled bool) *core.Mod {
	t.Helper()
	dir := t.TempDir()
	if disabled {
		require.NoError(t, os.WriteFile(filepath.Join(dir, DisableMarkerName), nil, 0644))
	}
	return core.NewMod(dir, "modA", "", "Alpha", "1.0", "", !disabled)
}

func TestToggleKeepsFlagAndMarkerInAgreement(t *testing.T) {
	mod := modFolder(t, false)
	toggler := NewMarkerToggler()

	require.NoError(t, toggler.Toggle(mod))
	assert.False(t, mod.Enabled)
	assert.True(t, MarkerExists(mod.FolderPath))
	assert.Equal(t, mod.Enabled, !MarkerExists(mod.FolderPath))

	require.NoError(t, toggler.Toggle(mod))
	assert.True(t, mod.Enabled)
	assert.False(t, MarkerExists(mod.FolderPath))
}

func TestToggleTwiceRestoresOriginalState(t *testing.T) {
	for _, disabled := range []bool{false, true} {
		mod := modFolder(t, disabled)
		toggler := NewMarkerToggler()
		wasEnabled := mod.Enabled

		require.NoError(t, toggler.Toggle(mod))
		require.NoError(t, toggler.Toggle(mod))

		assert.Equal(t, wasEnabled, mod.Enabled)
		assert.Equal(t, disabled, MarkerExists(mod.FolderPath))
	}
}

func TestSetEnabledIsIdempotent(t *testing.T) {
	mod := modFolder(t, false)

	require.NoError(t, SetEnabled(mod, true))
	assert.True(t, mod.Enabled)
	assert.False(t, MarkerExists(mod.FolderPath))
}

func TestEnablingTolerantOfMissingMarker(t *testing.T) {
	mod := modFolder(t, true)

	// Marker vanished behind our back.
	require.NoError(t, os.Remove(filepath.Join(mod.FolderPath, DisableMarkerName)))

	require.NoError(t, SetEnabled(mod, true))
	assert.True(t, mod.Enabled)
}

func TestToggleRejectsUnloadedMod(t *testing.T) {
	mod := core.NewFailedMod(t.TempDir())
	err := NewMarkerToggler().Toggle(mod)

	require.Error(t, err)
	assert.False(t, mod.Enabled)
	assert.False(t, MarkerExists(mod.FolderPath))
}

func TestDisableFailureLeavesFlagUntouched(t *testing.T) {
	mod := modFolder(t, false)

	// Destroy the mod folder so marker creation fails.
	require.NoError(t, os.RemoveAll(mod.FolderPath))

	err := SetEnabled(mod, false)
	require.Error(t, err)
	assert.True(t, mod.Enabled, "flag must keep its prior value on filesystem failure")
}
