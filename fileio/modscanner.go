package fileio

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"isaac-mod-manager/core"
	"isaac-mod-manager/logger"
)

// MetadataFileName is the per-mod metadata file the game ships with each mod.
const MetadataFileName = "metadata.xml"

type modMetadataXML struct {
	XMLName     xml.Name `xml:"metadata"`
	Directory   *string  `xml:"directory"`
	ID          *string  `xml:"id"`
	Name        *string  `xml:"name"`
	Version     *string  `xml:"version"`
	Description *string  `xml:"description"`
}

// ScanMods produces one Mod record per immediate subdirectory of the mods
// root. Folders whose metadata is missing, unparsable or incomplete yield
// failed placeholder records; per-mod failures never abort the scan. The
// result is a full rebuild, not a patch of any previous list.
func ScanMods(root string) ([]*core.Mod, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading mods folder %s: %w", root, err)
	}

	var mods []*core.Mod
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(root, entry.Name())
		mod, err := loadModFolder(folderPath)
		if err != nil {
			logger.Log.Warnf("skipping mod metadata for %s: %v", folderPath, err)
			mod = core.NewFailedMod(folderPath)
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

func loadModFolder(folderPath string) (*core.Mod, error) {
	raw, err := os.ReadFile(filepath.Join(folderPath, MetadataFileName))
	if err != nil {
		return nil, err
	}

	var meta modMetadataXML
	if err := xml.Unmarshal(raw, &meta); err != nil {
		return nil, err
	}

	for field, v := range map[string]*string{
		"directory": meta.Directory,
		"name":      meta.Name,
		"version":   meta.Version,
	} {
		if v == nil {
			return nil, fmt.Errorf("metadata has no %s element", field)
		}
	}

	workshopID := ""
	if meta.ID != nil {
		workshopID = *meta.ID
	}
	description := ""
	if meta.Description != nil {
		description = *meta.Description
	}

	return core.NewMod(
		folderPath,
		*meta.Directory,
		workshopID,
		*meta.Name,
		*meta.Version,
		description,
		!MarkerExists(folderPath),
	), nil
}
