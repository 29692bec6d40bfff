// Package media stores uploaded author photos and book covers on disk and
// normalizes them to a bounded thumbnail size after every save.
package media

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// thumbnailBound is the maximum edge length of a stored image. Images
// larger than this in either dimension are shrunk to fit a
// thumbnailBound x thumbnailBound box; smaller images are left untouched.
const thumbnailBound = 250

// ErrDecode is returned when a stored image cannot be decoded. A decode
// failure is fatal to the save that triggered it.
var ErrDecode = errors.New("cannot decode image")

// Store handles on-disk storage of catalog images.
type Store struct {
	dir string
}

// NewStore creates an image store rooted at the specified directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the media directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Path resolves a stored filename to its absolute location.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// SaveImage writes an uploaded image for the given entity to the media
// directory and normalizes it in place. It returns the stored filename,
// relative to the media directory. The save fails as a whole if the image
// cannot be decoded; no file is left behind.
func (s *Store) SaveImage(kind, id, uploadName string, src io.Reader) (string, error) {
	filename := s.imageFilename(kind, id, uploadName)
	target := filepath.Join(s.dir, filename)

	// Write through a temp file in the same directory for an atomic rename.
	tmpFile, err := os.CreateTemp(s.dir, "upload_tmp_")
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}()

	if _, err := io.Copy(tmpFile, src); err != nil {
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return "", err
	}

	if err := s.Normalize(target); err != nil {
		os.Remove(target)
		return "", err
	}

	return filename, nil
}

// Normalize resizes the stored image in place when either dimension exceeds
// the thumbnail bound, preserving aspect ratio. Images already within the
// bound are not rewritten, and nothing is ever upscaled.
func (s *Store) Normalize(path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, filepath.Base(path), err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= thumbnailBound && bounds.Dy() <= thumbnailBound {
		return nil
	}

	thumb := imaging.Fit(img, thumbnailBound, thumbnailBound, imaging.Lanczos)
	if err := imaging.Save(thumb, path); err != nil {
		return fmt.Errorf("save thumbnail %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Remove deletes a stored image. Missing files are not an error.
func (s *Store) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// imageFilename derives a stable name from the entity and the uploaded
// file, keeping the upload's extension so the encoder stays format-aware.
func (s *Store) imageFilename(kind, id, uploadName string) string {
	ext := strings.ToLower(filepath.Ext(uploadName))
	if ext == "" {
		ext = ".jpg"
	}
	hash := sha256.Sum256([]byte(uploadName))
	return fmt.Sprintf("%s_%s_%x%s", kind, id, hash[:8], ext)
}
