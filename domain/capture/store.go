package capture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ScreenshotName is the file name of the single canonical screenshot.
const ScreenshotName = "latest_screenshot.png"

// Store owns the canonical screenshot path inside dir. Every Save overwrites
// the same file, so at most one screenshot exists at a time.
type Store struct {
	dir  string
	path string
}

// NewStore creates dir if needed and returns a store rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("capture: create screenshot dir: %w", err)
	}
	return &Store{dir: dir, path: filepath.Join(dir, ScreenshotName)}, nil
}

// Path returns the canonical screenshot path.
func (s *Store) Path() string { return s.path }

// Save encodes img as PNG to a temp file and renames it over the canonical
// path. It returns the written size.
func (s *Store) Save(img image.Image) (int64, error) {
	if img == nil {
		return 0, fmt.Errorf("%w: nil image", ErrSaveFailed)
	}
	// imaging picks the encoder from the extension, keep .png last.
	tmp := filepath.Join(s.dir, ".latest_screenshot.tmp.png")
	if err := imaging.Save(img, tmp); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return info.Size(), nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
