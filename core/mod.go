package core

// NoDescription is the placeholder used when a mod's metadata carries no
// description text.
const NoDescription = "[No description.]"

// Mod is one mod folder as seen by the most recent scan. The full mod list is
// rebuilt on every scan; a Mod never outlives the scan that produced it.
//
// Directory is the stable identifier packs reference. It is not the folder
// name on disk and not the display name.
type Mod struct {
	FolderPath  string
	Directory   string
	WorkshopID  string
	Name        string
	Version     string
	Description string

	// Enabled mirrors the absence of the disable marker file. It is
	// recomputed from disk at scan time and after every toggle.
	Enabled bool

	// Loaded is false when metadata was missing, unparsable, or lacked a
	// required field. Failed mods keep their slot in listings as error
	// placeholders but are excluded from pack membership and filtering.
	Loaded bool
}

func NewMod(folderPath, directory, workshopID, name, version, description string, enabled bool) *Mod {
	if description == "" {
		description = NoDescription
	}
	return &Mod{
		FolderPath:  folderPath,
		Directory:   directory,
		WorkshopID:  workshopID,
		Name:        name,
		Version:     version,
		Description: description,
		Enabled:     enabled,
		Loaded:      true,
	}
}

// NewFailedMod records a folder whose metadata could not be loaded. Only the
// folder path is known.
func NewFailedMod(folderPath string) *Mod {
	return &Mod{FolderPath: folderPath}
}

func (m *Mod) HasWorkshopID() bool {
	return m.WorkshopID != ""
}

// FindModByDirectory returns the loaded mod with the given directory key, or
// nil if none matches. Failed mods never match.
func FindModByDirectory(mods []*Mod, directory string) *Mod {
	for _, m := range mods {
		if m.Loaded && m.Directory == directory {
			return m
		}
	}
	return nil
}
