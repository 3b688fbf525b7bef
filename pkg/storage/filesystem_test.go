package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveStream(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "teachers")
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	name, err := store.SaveStream("1700000000_photo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "1700000000_photo.png", name)

	data, err := os.ReadFile(store.Path(name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveStreamRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../evil.png", "a/b.png", ".hidden"} {
		_, err := store.SaveStream(name, strings.NewReader("x"))
		assert.Error(t, err, name)
	}
}
