package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/newscrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSites(t *testing.T) {
	t.Parallel()

	t.Run("reads one URL per line skipping blanks", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sites.txt")
		content := "https://a.example/\n\n  https://b.example/markets  \n\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		sites, err := loadSites(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example/", "https://b.example/markets"}, sites)
	})

	t.Run("missing file returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := loadSites(filepath.Join(t.TempDir(), "nope.txt"))

		require.Error(t, err)
		assert.Equal(t, newscrawl.ENOTFOUND, newscrawl.ErrorCode(err))
	})

	t.Run("empty file returns EINVALID", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0644))

		_, err := loadSites(path)

		require.Error(t, err)
		assert.Equal(t, newscrawl.EINVALID, newscrawl.ErrorCode(err))
	})
}
