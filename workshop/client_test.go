package workshop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const previewPage = `<html><body>
<div class="workshopItemPreviewArea">
  <img id="previewImageMain" src="https://images.example/preview.jpg" />
</div>
</body></html>`

const enlargeablePage = `<html><body>
<div class="highlight_strip">
  <img class="workshopItemPreviewImageEnlargeable" src="https://images.example/item.jpg?imw=512&letterbox=true" />
</div>
</body></html>`

const bareImagePage = `<html><body>
<img src="https://images.example/unrelated.jpg" />
</body></html>`

func TestExtractImageURLPrefersPreviewImage(t *testing.T) {
	url, err := ExtractImageURL(strings.NewReader(previewPage))
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/preview.jpg", url)
}

func TestExtractImageURLFallsBackToEnlargeable(t *testing.T) {
	url, err := ExtractImageURL(strings.NewReader(enlargeablePage))
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/item.jpg?imw=512&letterbox=false", url)
}

func TestExtractImageURLPreviewWinsOverEnlargeable(t *testing.T) {
	page := strings.Replace(previewPage, "</body>", enlargeablePage+"</body>", 1)
	url, err := ExtractImageURL(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/preview.jpg", url)
}

func TestExtractImageURLNoImage(t *testing.T) {
	_, err := ExtractImageURL(strings.NewReader(bareImagePage))
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestExtractImageURLEnlargeableWithoutLetterbox(t *testing.T) {
	page := strings.Replace(enlargeablePage, "&letterbox=true", "", 1)
	url, err := ExtractImageURL(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/item.jpg?imw=512", url)
}
