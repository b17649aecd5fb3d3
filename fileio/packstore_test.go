package fileio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isaac-mod-manager/core"
)

func newStoreWithPack(t *testing.T, name string, mods ...string) (*PackStore, *core.Pack) {
	t.Helper()
	store := NewPackStore(t.TempDir())
	pack := core.NewPack(name)
	for _, m := range mods {
		pack.AddMod(m)
	}
	require.NoError(t, store.Set.Add(pack))
	require.NoError(t, store.Save(pack))
	return store, pack
}

func TestSaveLoadRoundTrip(t *testing.T) {
	_, pack := newStoreWithPack(t, "Greedier", "modA", "modB")

	loaded, err := LoadPackFile(pack.GetFilePath())
	require.NoError(t, err)

	assert.Equal(t, pack.Name, loaded.Name)
	assert.Equal(t, pack.UUID, loaded.UUID)
	assert.Equal(t, pack.Mods, loaded.Mods)
	assert.False(t, pack.HasUnsavedChanges())
}

func TestSaveDerivesFilePathOnce(t *testing.T) {
	store, pack := newStoreWithPack(t, "My Pack: Greedier!")

	path := pack.GetFilePath()
	assert.Equal(t, "My Pack Greedier.xml", filepath.Base(path))

	// Renaming never moves the file.
	require.NoError(t, store.Set.Rename(pack, "Different"))
	require.NoError(t, store.Save(pack))
	assert.Equal(t, path, pack.GetFilePath())

	loaded, err := LoadPackFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Different", loaded.Name)
}

func TestLoadPackFileValidation(t *testing.T) {
	id := uuid.NewString()
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `<modpack><uuid>` + id + `</uuid><mods></mods></modpack>`},
		{"missing uuid", `<modpack><name>X</name><mods></mods></modpack>`},
		{"invalid uuid", `<modpack><name>X</name><uuid>nope</uuid><mods></mods></modpack>`},
		{"missing mods container", `<modpack><name>X</name><uuid>` + id + `</uuid></modpack>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pack.xml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))
			_, err := LoadPackFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadPackFileDefaultsMissingDate(t *testing.T) {
	body := `<modpack><name>X</name><uuid>` + uuid.NewString() + `</uuid><mods><mod>modA</mod></mods></modpack>`
	path := filepath.Join(t.TempDir(), "pack.xml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	before := time.Now()
	pack, err := LoadPackFile(path)
	require.NoError(t, err)

	assert.False(t, pack.DateCreated.Before(before.Truncate(time.Second)))
	assert.Equal(t, []string{"modA"}, pack.Mods)
}

func TestLoadAllRejectsUUIDCollision(t *testing.T) {
	_, pack := newStoreWithPack(t, "Original", "modA")

	// A second file carrying the same UUID.
	clashPath := filepath.Join(filepath.Dir(pack.GetFilePath()), "zz-clash.xml")
	raw, err := os.ReadFile(pack.GetFilePath())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(clashPath, raw, 0644))

	fresh := NewPackStore(filepath.Dir(pack.GetFilePath()))
	require.NoError(t, fresh.LoadAll())

	assert.Equal(t, 1, fresh.Set.Len())
	kept := fresh.Set.FindByUUID(pack.UUID)
	require.NotNil(t, kept)
	assert.Equal(t, "Original", kept.Name)

	// The rejected file stays on disk; rejection is not deletion.
	_, err = os.Stat(clashPath)
	assert.NoError(t, err)
}

func TestExportUsesFreshUUIDAndLeavesOriginalAlone(t *testing.T) {
	store, pack := newStoreWithPack(t, "Original", "modA")
	modified := pack.DateModified
	pack.AddMod("modB")
	require.True(t, pack.HasUnsavedChanges())

	target := filepath.Join(t.TempDir(), "exported.xml")
	require.NoError(t, store.Export(pack, target))

	exported, err := LoadPackFile(target)
	require.NoError(t, err)
	assert.NotEqual(t, pack.UUID, exported.UUID)
	assert.Equal(t, pack.Mods, exported.Mods)

	// Export is not a canonical save.
	assert.True(t, pack.HasUnsavedChanges())
	assert.Equal(t, modified, pack.DateModified)

	// The exported copy re-imports next to the original without colliding.
	imported, err := store.Import(target)
	require.NoError(t, err)
	assert.Equal(t, "Original (1)", imported.Name)
}

func TestLoadAllSuffixesNameCollision(t *testing.T) {
	store, pack := newStoreWithPack(t, "Twin")
	require.NoError(t, store.Export(pack, filepath.Join(filepath.Dir(pack.GetFilePath()), "twin-copy.xml")))

	fresh := NewPackStore(filepath.Dir(pack.GetFilePath()))
	require.NoError(t, fresh.LoadAll())

	require.Equal(t, 2, fresh.Set.Len())
	assert.NotNil(t, fresh.Set.FindByName("Twin"))
	assert.NotNil(t, fresh.Set.FindByName("Twin (1)"))
}

func TestDeleteRemovesBackingFile(t *testing.T) {
	store, pack := newStoreWithPack(t, "Doomed")
	path := pack.GetFilePath()

	require.NoError(t, store.Delete(pack))
	assert.Equal(t, 0, store.Set.Len())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestCanonicalSaveRefreshesModified(t *testing.T) {
	store, pack := newStoreWithPack(t, "Timed")
	first := pack.DateModified

	pack.AddMod("modA")
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, store.Save(pack))

	assert.True(t, pack.DateModified.After(first))
	assert.False(t, pack.HasUnsavedChanges())
}
