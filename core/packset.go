package core

import (
	"fmt"
	"slices"
)

// PackSet owns the currently loaded packs and enforces their identity
// invariants: UUID uniqueness and display-name uniqueness. All admission to
// the active set goes through Add.
type PackSet struct {
	packs []*Pack
}

func NewPackSet() *PackSet {
	return &PackSet{}
}

// Packs returns the loaded packs ordered by creation time ascending,
// insertion order for ties.
func (s *PackSet) Packs() []*Pack {
	ordered := slices.Clone(s.packs)
	slices.SortStableFunc(ordered, func(a, b *Pack) int {
		return a.DateCreated.Compare(b.DateCreated)
	})
	return ordered
}

func (s *PackSet) Len() int {
	return len(s.packs)
}

func (s *PackSet) FindByUUID(id string) *Pack {
	for _, p := range s.packs {
		if p.UUID == id {
			return p
		}
	}
	return nil
}

func (s *PackSet) FindByName(name string) *Pack {
	for _, p := range s.packs {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Add admits a pack to the active set. A UUID collision rejects the newcomer
// and leaves the original untouched. A name collision is resolved by
// suffixing " (1)", " (2)", ... until the name is unique; the pack's Name
// reflects the admitted name afterwards.
func (s *PackSet) Add(p *Pack) error {
	if existing := s.FindByUUID(p.UUID); existing != nil {
		return fmt.Errorf("a pack with UUID %s is already loaded (%q)", p.UUID, existing.Name)
	}
	base := p.Name
	for i := 1; s.FindByName(p.Name) != nil; i++ {
		p.Name = fmt.Sprintf("%s (%d)", base, i)
	}
	s.packs = append(s.packs, p)
	return nil
}

// Remove drops a pack from the active set. Deleting the backing file is the
// store's concern, not the set's.
func (s *PackSet) Remove(p *Pack) bool {
	i := slices.Index(s.packs, p)
	if i < 0 {
		return false
	}
	s.packs = slices.Delete(s.packs, i, i+1)
	return true
}

// Rename changes a pack's display name. Renaming to the current name is a
// no-op; renaming onto another loaded pack's name is rejected. The backing
// file path is never re-derived.
func (s *PackSet) Rename(p *Pack, newName string) error {
	if newName == p.Name {
		return nil
	}
	if other := s.FindByName(newName); other != nil && other != p {
		return fmt.Errorf("a pack named %q already exists", newName)
	}
	p.Name = newName
	p.MarkDirty()
	return nil
}

// Duplicate clones a pack into the set under a " (Copy)" suffixed name,
// appending further " (Copy)" suffixes until no collision remains. The clone
// has a fresh UUID, a value copy of the mods list and no backing file.
func (s *PackSet) Duplicate(p *Pack) *Pack {
	name := p.Name + " (Copy)"
	for s.FindByName(name) != nil {
		name += " (Copy)"
	}
	dup := p.Duplicate(name)
	s.packs = append(s.packs, dup)
	return dup
}

// Dirty returns the packs holding unsaved changes, in creation order.
func (s *PackSet) Dirty() []*Pack {
	var dirty []*Pack
	for _, p := range s.Packs() {
		if p.HasUnsavedChanges() {
			dirty = append(dirty, p)
		}
	}
	return dirty
}
