package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSave(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	assert.NoError(t, err)

	stored, err := store.Save("report.pdf", strings.NewReader("hello"))
	assert.NoError(t, err)

	// <unixmillis>_<random>_<basename>
	assert.Regexp(t, regexp.MustCompile(`^\d+_[0-9a-f-]{8}_report\.pdf$`), stored.Name)
	assert.Equal(t, "application/pdf", stored.ContentType)
	assert.Equal(t, int64(5), stored.Size)

	content, err := os.ReadFile(stored.Path)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestSaveStripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	assert.NoError(t, err)

	stored, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored.Name, "_passwd"))
	assert.Equal(t, dir, filepath.Dir(stored.Path))
}

func TestSaveSameNameTwice(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	assert.NoError(t, err)

	a, err := store.Save("photo.png", strings.NewReader("one"))
	assert.NoError(t, err)
	b, err := store.Save("photo.png", strings.NewReader("two"))
	assert.NoError(t, err)

	assert.NotEqual(t, a.Name, b.Name)
}

func TestRemove(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	assert.NoError(t, err)

	stored, err := store.Save("note.txt", strings.NewReader("bye"))
	assert.NoError(t, err)

	assert.NoError(t, store.Remove(stored.Name))
	_, statErr := os.Stat(stored.Path)
	assert.True(t, os.IsNotExist(statErr))

	// Removing again, or removing something that never existed, is fine.
	assert.NoError(t, store.Remove(stored.Name))
	assert.NoError(t, store.Remove(""))
}

func TestInferContentTypeFallback(t *testing.T) {
	assert.Equal(t, "application/octet-stream", inferContentType("archive.unknownext"))
}
