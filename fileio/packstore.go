package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"isaac-mod-manager/core"
	"isaac-mod-manager/logger"
)

// PackStore ties the in-memory pack set to its backing directory. Identity
// invariants (UUID and name uniqueness) live in core.PackSet; the store adds
// persistence on top.
type PackStore struct {
	Set    *core.PackSet
	writer PackWriter
	dir    string
}

func NewPackStore(dir string) *PackStore {
	return &PackStore{
		Set:    core.NewPackSet(),
		writer: NewPackWriter(dir),
		dir:    dir,
	}
}

// LoadAll loads every pack file in the packs directory, in file name order
// for determinism. A pack that fails to parse or collides on UUID is
// rejected with a warning and never admitted; the rejection is cleanup, so
// no confirmation is involved and the file on disk is left alone. Name
// collisions are resolved by the set's suffixing.
func (s *PackStore) LoadAll() error {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.xml"))
	if err != nil {
		return err
	}
	sort.Strings(paths)

	for _, path := range paths {
		if _, err := s.Load(path); err != nil {
			logger.Log.Warnf("rejected pack file %s: %v", path, err)
		}
	}
	return nil
}

// Load parses one pack file and admits it to the active set.
func (s *PackStore) Load(path string) (*core.Pack, error) {
	pack, err := LoadPackFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.Set.Add(pack); err != nil {
		return nil, err
	}
	return pack, nil
}

// Import loads a pack file from outside the packs directory. The imported
// pack keeps its identity but is re-homed: its next save lands in the packs
// directory under a freshly derived file name.
func (s *PackStore) Import(path string) (*core.Pack, error) {
	pack, err := s.Load(path)
	if err != nil {
		return nil, err
	}
	pack.SetFilePath("")
	pack.MarkDirty()
	return pack, nil
}

// Save performs the canonical save of one pack.
func (s *PackStore) Save(pack *core.Pack) error {
	return s.writer.Write(pack)
}

// SaveAll saves every pack holding unsaved changes.
func (s *PackStore) SaveAll() error {
	for _, pack := range s.Set.Dirty() {
		if err := s.Save(pack); err != nil {
			return fmt.Errorf("saving pack %q: %w", pack.Name, err)
		}
	}
	return nil
}

// Export writes a re-importable copy of the pack to targetPath.
func (s *PackStore) Export(pack *core.Pack, targetPath string) error {
	return s.writer.Export(pack, targetPath)
}

// Delete removes the pack from the active set and deletes its backing file
// if one exists. Confirmation is the caller's concern.
func (s *PackStore) Delete(pack *core.Pack) error {
	if !s.Set.Remove(pack) {
		return fmt.Errorf("pack %q is not loaded", pack.Name)
	}
	if path := pack.GetFilePath(); path != "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("deleting pack file %s: %w", path, err)
		}
	}
	return nil
}
