package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	store, err := NewStore(filepath.Join(t.TempDir(), "media"))
	require.NoError(t, err)
	return store
}

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func imageSize(t *testing.T, path string) (int, int) {
	t.Helper()
	img, err := imaging.Open(path)
	require.NoError(t, err)
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func TestSaveImage_ShrinksLargeImage(t *testing.T) {
	store := setupStore(t)

	filename, err := store.SaveImage("book", "1", "cover.png", encodePNG(t, 500, 300))
	require.NoError(t, err)

	width, height := imageSize(t, store.Path(filename))
	assert.Equal(t, 250, width)
	assert.Equal(t, 150, height, "aspect ratio must be preserved")
}

func TestSaveImage_ShrinksTallImage(t *testing.T) {
	store := setupStore(t)

	filename, err := store.SaveImage("book", "2", "cover.png", encodePNG(t, 300, 600))
	require.NoError(t, err)

	width, height := imageSize(t, store.Path(filename))
	assert.Equal(t, 125, width)
	assert.Equal(t, 250, height)
}

func TestSaveImage_NeverUpscales(t *testing.T) {
	store := setupStore(t)

	filename, err := store.SaveImage("author", "1", "photo.png", encodePNG(t, 100, 100))
	require.NoError(t, err)

	width, height := imageSize(t, store.Path(filename))
	assert.Equal(t, 100, width)
	assert.Equal(t, 100, height)
}

func TestSaveImage_ExactBoundUntouched(t *testing.T) {
	store := setupStore(t)

	filename, err := store.SaveImage("book", "3", "cover.png", encodePNG(t, 250, 250))
	require.NoError(t, err)

	width, height := imageSize(t, store.Path(filename))
	assert.Equal(t, 250, width)
	assert.Equal(t, 250, height)
}

func TestSaveImage_DecodeFailure(t *testing.T) {
	store := setupStore(t)

	_, err := store.SaveImage("book", "4", "cover.png", strings.NewReader("this is not an image"))

	require.ErrorIs(t, err, ErrDecode)

	// A failed save must leave nothing behind.
	entries, readErr := os.ReadDir(store.Dir())
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestSaveImage_FilenameStable(t *testing.T) {
	store := setupStore(t)

	first, err := store.SaveImage("book", "5", "cover.png", encodePNG(t, 10, 10))
	require.NoError(t, err)
	second, err := store.SaveImage("book", "5", "cover.png", encodePNG(t, 10, 10))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "book_5_"))
	assert.True(t, strings.HasSuffix(first, ".png"))
}

func TestRemove_MissingFile(t *testing.T) {
	store := setupStore(t)

	assert.NoError(t, store.Remove("does_not_exist.jpg"))
}
