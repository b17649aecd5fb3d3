package workshop

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImageBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCachePathPattern(t *testing.T) {
	cache := NewCache("/tmp/cache")
	assert.Equal(t, "/tmp/cache/workshop_123456.png", cache.Path("123456"))
}

func TestStoreResizesToThumbnailSquare(t *testing.T) {
	cache := NewCache(t.TempDir())
	raw := testImageBytes(t, 200, 100)

	path, err := cache.Store("123456", raw)
	require.NoError(t, err)
	assert.Equal(t, cache.Path("123456"), path)
	assert.True(t, cache.Has("123456"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	thumb, err := png.Decode(f)
	require.NoError(t, err)
	bounds := thumb.Bounds()
	assert.Equal(t, ThumbSize, bounds.Dx())
	assert.Equal(t, ThumbSize, bounds.Dy())
}

func TestStoreRejectsGarbage(t *testing.T) {
	cache := NewCache(t.TempDir())
	_, err := cache.Store("123456", []byte("not an image"))
	require.Error(t, err)
	assert.False(t, cache.Has("123456"))
}

func TestRemove(t *testing.T) {
	cache := NewCache(t.TempDir())
	_, err := cache.Store("123456", testImageBytes(t, 32, 32))
	require.NoError(t, err)

	require.NoError(t, cache.Remove("123456"))
	assert.False(t, cache.Has("123456"))

	// Removing a missing entry is fine.
	require.NoError(t, cache.Remove("123456"))
}
