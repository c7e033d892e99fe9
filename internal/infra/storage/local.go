// Package storage writes uploaded files to a local directory. Stored names
// carry a timestamp prefix and a random component so two uploads of the same
// file never collide.
package storage

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LocalStorage struct {
	Dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalStorage{Dir: dir}, nil
}

type StoredFile struct {
	Name        string // stored file name inside the upload dir
	Path        string // full path on disk
	ContentType string
	Size        int64
}

// Save streams the upload to disk under <unixmillis>_<uuid>_<basename>.
func (s *LocalStorage) Save(originalName string, r io.Reader) (*StoredFile, error) {
	base := filepath.Base(originalName)
	name := fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), uuid.New().String()[:8], base)
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("writing file: %w", err)
	}

	return &StoredFile{
		Name:        name,
		Path:        path,
		ContentType: inferContentType(base),
		Size:        size,
	}, nil
}

// Remove deletes a stored file from disk. A missing file is not an error; the
// record is what matters.
func (s *LocalStorage) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func inferContentType(name string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}
