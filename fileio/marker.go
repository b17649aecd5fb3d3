package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"isaac-mod-manager/core"
)

// DisableMarkerName is the zero-content sentinel whose presence inside a mod
// folder marks the mod disabled. It is the single source of truth for
// enablement; no other state is persisted.
const DisableMarkerName = "disable.it"

func markerPath(folderPath string) string {
	return filepath.Join(folderPath, DisableMarkerName)
}

// MarkerExists reports whether the disable marker is present in a mod folder.
func MarkerExists(folderPath string) bool {
	_, err := os.Stat(markerPath(folderPath))
	return err == nil
}

// MarkerToggler is the on-disk enablement controller. It satisfies
// core.Toggler.
type MarkerToggler struct{}

func NewMarkerToggler() MarkerToggler {
	return MarkerToggler{}
}

func (MarkerToggler) Toggle(mod *core.Mod) error {
	return SetEnabled(mod, !mod.Enabled)
}

// SetEnabled drives a mod's enabled state to the requested value. Disabling
// creates (or truncates) the marker file; enabling removes it, tolerating a
// marker that is already gone. The filesystem is mutated first and the
// in-memory flag only on success, so the caller never observes a flag that
// disagrees with the marker.
func SetEnabled(mod *core.Mod, enabled bool) error {
	if !mod.Loaded {
		return fmt.Errorf("cannot toggle unloaded mod at %s", mod.FolderPath)
	}
	if mod.Enabled == enabled {
		return nil
	}

	if enabled {
		if err := os.Remove(markerPath(mod.FolderPath)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing disable marker: %w", err)
		}
	} else {
		f, err := os.Create(markerPath(mod.FolderPath))
		if err != nil {
			return fmt.Errorf("creating disable marker: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	mod.Enabled = enabled
	return nil
}
