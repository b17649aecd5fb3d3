package fileio

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"isaac-mod-manager/core"
)

type packXML struct {
	XMLName xml.Name     `xml:"modpack"`
	Name    *string      `xml:"name"`
	UUID    *string      `xml:"uuid"`
	Date    *packDateXML `xml:"date"`
	Mods    *packModsXML `xml:"mods"`
}

type packDateXML struct {
	Created  string `xml:"created,attr"`
	Modified string `xml:"modified,attr"`
}

type packModsXML struct {
	Mods []string `xml:"mod"`
}

// LoadPackFile parses one pack file. Required fields are name, uuid and the
// mods container (which may be empty); a missing date element defaults both
// timestamps to now. Admission to the active set, and therefore UUID and
// name collision handling, is the store's job, not the loader's.
func LoadPackFile(path string) (*core.Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed packXML
	if err := xml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parsing pack file %s: %w", path, err)
	}

	if parsed.Name == nil {
		return nil, fmt.Errorf("pack file %s has no name element", path)
	}
	if parsed.UUID == nil {
		return nil, fmt.Errorf("pack file %s has no uuid element", path)
	}
	if _, err := uuid.Parse(*parsed.UUID); err != nil {
		return nil, fmt.Errorf("pack file %s has an invalid uuid: %w", path, err)
	}
	if parsed.Mods == nil {
		return nil, fmt.Errorf("pack file %s has no mods element", path)
	}

	now := time.Now()
	created, modified := now, now
	if parsed.Date != nil {
		if t, err := time.Parse(time.RFC3339, parsed.Date.Created); err == nil {
			created = t
		}
		if t, err := time.Parse(time.RFC3339, parsed.Date.Modified); err == nil {
			modified = t
		}
	}

	mods := parsed.Mods.Mods
	if mods == nil {
		mods = []string{}
	}

	pack := &core.Pack{
		UUID:         *parsed.UUID,
		Name:         *parsed.Name,
		DateCreated:  created,
		DateModified: modified,
		Mods:         mods,
	}
	pack.SetFilePath(path)
	return pack, nil
}
