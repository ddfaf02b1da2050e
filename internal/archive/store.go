// Package archive manages the local output tree of downloaded documents.
package archive

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/civicdocs/agendarchive/pkg/models"
)

// Store is the local directory tree documents land in:
// <root>/<year>/<label>_<type><ext>. A file's existence is the only
// completion record; files are never rewritten once present.
type Store struct {
	root string
}

// New creates a Store rooted at the given directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the output root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the destination path for one document file.
func (s *Store) Path(year int, filename string) string {
	return filepath.Join(s.root, strconv.Itoa(year), filename)
}

// Has reports whether a destination file already exists.
func (s *Store) Has(dest string) bool {
	_, err := os.Stat(dest)
	return err == nil
}

// EnsureYearDir creates the per-year directory if it is absent.
func (s *Store) EnsureYearDir(year int) error {
	return os.MkdirAll(filepath.Join(s.root, strconv.Itoa(year)), 0o755)
}

// BuildFilename composes the deterministic output name <label>_<type><ext>.
// The extension comes from the URL path and defaults to .pdf when the URL
// has none, which is the case for the viewfile endpoints.
func BuildFilename(label string, t models.DocType, rawURL string) string {
	return fmt.Sprintf("%s_%s%s", label, t, extensionOf(rawURL))
}

func extensionOf(rawURL string) string {
	target := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		target = u.Path
	}
	if ext := path.Ext(target); ext != "" {
		return ext
	}
	return ".pdf"
}
