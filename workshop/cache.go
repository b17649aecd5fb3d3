package workshop

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/nfnt/resize"

	"isaac-mod-manager/fileio"
)

// ThumbSize is the square edge thumbnails are resized to before caching.
const ThumbSize = 64

// Cache is the on-disk thumbnail cache, keyed by workshop identifier. Each
// entry is written once by the fetch worker and only read afterwards, so no
// locking is needed.
type Cache struct {
	Dir string
}

func NewCache(dir string) Cache {
	return Cache{Dir: dir}
}

// Path returns the cache file location for an identifier, whether or not the
// entry exists yet.
func (c Cache) Path(id string) string {
	return filepath.Join(c.Dir, fmt.Sprintf("workshop_%s.png", id))
}

// Has reports whether a cached thumbnail exists for the identifier.
func (c Cache) Has(id string) bool {
	_, err := os.Stat(c.Path(id))
	return err == nil
}

// Store decodes raw image bytes, resizes them to the fixed thumbnail square
// and persists the result as PNG. Returns the cache path.
func (c Cache) Store(id string, raw []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decoding image for %s: %w", id, err)
	}

	thumb := resize.Resize(ThumbSize, ThumbSize, img, resize.Lanczos3)

	path := c.Path(id)
	f, err := fileio.CreateFile(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, thumb); err != nil {
		return "", fmt.Errorf("encoding thumbnail for %s: %w", id, err)
	}
	return path, nil
}

// Remove deletes a cached thumbnail so it can be re-fetched.
func (c Cache) Remove(id string) error {
	err := os.Remove(c.Path(id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
