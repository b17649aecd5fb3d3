package core

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Pack is a named, user-curated list of mod directory identifiers describing
// a desired enabled-set. Packs are persisted one file each; see fileio for
// the XML schema.
type Pack struct {
	UUID         string
	Name         string
	DateCreated  time.Time
	DateModified time.Time

	// Mods holds directory identifiers, not Mod references. Membership is
	// tested by string equality against Mod.Directory.
	Mods []string

	// unsavedChanges is transient state, never serialized.
	unsavedChanges bool

	filePath string
}

// NewPack creates an in-memory pack with a fresh UUID and no backing file.
func NewPack(name string) *Pack {
	now := time.Now()
	return &Pack{
		UUID:           uuid.NewString(),
		Name:           name,
		DateCreated:    now,
		DateModified:   now,
		Mods:           []string{},
		unsavedChanges: true,
	}
}

func (p *Pack) HasMod(directory string) bool {
	return slices.Contains(p.Mods, directory)
}

// AddMod appends a directory identifier if absent. Returns true if the
// membership changed.
func (p *Pack) AddMod(directory string) bool {
	if p.HasMod(directory) {
		return false
	}
	p.Mods = append(p.Mods, directory)
	p.unsavedChanges = true
	return true
}

// RemoveMod removes a directory identifier if present. Returns true if the
// membership changed.
func (p *Pack) RemoveMod(directory string) bool {
	i := slices.Index(p.Mods, directory)
	if i < 0 {
		return false
	}
	p.Mods = slices.Delete(p.Mods, i, i+1)
	p.unsavedChanges = true
	return true
}

// AddActiveMods adds every currently enabled loaded mod's directory that is
// not already a member. Returns the number of additions.
func (p *Pack) AddActiveMods(mods []*Mod) int {
	added := 0
	for _, m := range mods {
		if m.Loaded && m.Enabled && p.AddMod(m.Directory) {
			added++
		}
	}
	return added
}

// RemoveActiveMods removes every currently enabled loaded mod's directory
// that is a member. Returns the number of removals.
func (p *Pack) RemoveActiveMods(mods []*Mod) int {
	removed := 0
	for _, m := range mods {
		if m.Loaded && m.Enabled && p.RemoveMod(m.Directory) {
			removed++
		}
	}
	return removed
}

// Duplicate returns a new pack with a fresh UUID, a value copy of the mods
// list and no backing file. Naming is the caller's concern (see
// PackSet.Duplicate for the collision-free " (Copy)" derivation).
func (p *Pack) Duplicate(name string) *Pack {
	dup := NewPack(name)
	dup.Mods = slices.Clone(p.Mods)
	return dup
}

func (p *Pack) HasUnsavedChanges() bool {
	return p.unsavedChanges
}

// MarkDirty flags the pack as holding unsaved changes.
func (p *Pack) MarkDirty() {
	p.unsavedChanges = true
}

// MarkSaved clears the dirty flag and refreshes the modification timestamp.
// Called by the canonical save path only, never by export.
func (p *Pack) MarkSaved(at time.Time) {
	p.DateModified = at
	p.unsavedChanges = false
}

func (p *Pack) GetFilePath() string {
	return p.filePath
}

// SetFilePath pins the backing file. The path is derived once, on load or on
// first save; later renames do not move the file.
func (p *Pack) SetFilePath(path string) {
	p.filePath = path
}
