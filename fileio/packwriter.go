package fileio

import (
	"encoding/xml"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"isaac-mod-manager/core"
)

// PackWriter serializes packs into a packs directory, one XML file per pack.
type PackWriter struct {
	Dir string
}

func NewPackWriter(dir string) PackWriter {
	return PackWriter{Dir: dir}
}

// Write performs a canonical save: the modification timestamp is refreshed
// and the dirty flag cleared. A pack with no backing file yet gets one
// derived from its sanitized name; the derivation happens exactly once and
// renames never move the file.
func (w PackWriter) Write(pack *core.Pack) error {
	if pack.GetFilePath() == "" {
		stem := core.SanitizeFileName(pack.Name)
		pack.SetFilePath(filepath.Join(w.Dir, stem+".xml"))
	}

	now := time.Now()
	raw, err := marshalPack(pack, pack.UUID, now)
	if err != nil {
		return err
	}
	if err := writeFile(raw, pack.GetFilePath()); err != nil {
		return err
	}

	pack.MarkSaved(now)
	return nil
}

// Export writes a copy of the pack to an arbitrary path under a freshly
// generated UUID, so the copy can be re-imported into the same running set
// without colliding. The original pack is left untouched: same UUID, same
// modification time, dirty flag intact.
func (w PackWriter) Export(pack *core.Pack, targetPath string) error {
	raw, err := marshalPack(pack, uuid.NewString(), time.Now())
	if err != nil {
		return err
	}
	return writeFile(raw, targetPath)
}

func marshalPack(pack *core.Pack, id string, modified time.Time) ([]byte, error) {
	name := pack.Name
	repr := packXML{
		Name: &name,
		UUID: &id,
		Date: &packDateXML{
			Created:  pack.DateCreated.Format(time.RFC3339),
			Modified: modified.Format(time.RFC3339),
		},
		Mods: &packModsXML{Mods: pack.Mods},
	}

	body, err := xml.MarshalIndent(repr, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

func writeFile(raw []byte, targetPath string) error {
	f, err := CreateFile(targetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.Write(raw); err != nil {
		return err
	}

	return nil
}
