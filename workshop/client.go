package workshop

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	itemPageURL    = "https://steamcommunity.com/sharedfiles/filedetails/?id=%s"
	userAgent      = "isaac-mod-manager"
	defaultTimeout = 30 * time.Second
)

// ErrNoImage means the workshop page was fetched and parsed but no preview
// image URL could be resolved from it.
var ErrNoImage = fmt.Errorf("no preview image found on workshop page")

// Client fetches workshop item pages and their preview images. The HTTP
// client carries an explicit timeout so a hung request cannot starve the
// fetch queue indefinitely.
type Client struct {
	PageURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		PageURL: itemPageURL,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// FetchThumbnail resolves a workshop identifier to raw preview image bytes:
// fetch the item page, extract the image URL, download the image.
func (c *Client) FetchThumbnail(id string) ([]byte, error) {
	page, err := c.get(fmt.Sprintf(c.PageURL, id))
	if err != nil {
		return nil, fmt.Errorf("fetching workshop page for %s: %w", id, err)
	}
	defer page.Close()

	imageURL, err := ExtractImageURL(page)
	if err != nil {
		return nil, err
	}

	img, err := c.get(imageURL)
	if err != nil {
		return nil, fmt.Errorf("downloading preview image for %s: %w", id, err)
	}
	defer img.Close()

	return io.ReadAll(img)
}

func (c *Client) get(url string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// ExtractImageURL locates the preview image URL in a workshop item page.
// Two strategies, in order: the dedicated preview image element, then any
// enlargeable preview image. The enlargeable variant is served letterboxed;
// the letterbox flag in its URL has to be switched off to get the plain
// image.
func ExtractImageURL(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing workshop page: %w", err)
	}

	if src, ok := findImage(doc, isPreviewImage); ok {
		return src, nil
	}
	if src, ok := findImage(doc, isEnlargeableImage); ok {
		return strings.Replace(src, "letterbox=true", "letterbox=false", 1), nil
	}
	return "", ErrNoImage
}

func findImage(n *html.Node, match func(*html.Node) bool) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "img" && match(n) {
		if src := attrValue(n, "src"); src != "" {
			return src, true
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if src, ok := findImage(child, match); ok {
			return src, true
		}
	}
	return "", false
}

func isPreviewImage(n *html.Node) bool {
	id := attrValue(n, "id")
	return id == "previewImage" || id == "previewImageMain"
}

func isEnlargeableImage(n *html.Node) bool {
	return strings.Contains(attrValue(n, "class"), "workshopItemPreviewImageEnlargeable")
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
