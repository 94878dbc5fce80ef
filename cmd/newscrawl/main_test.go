package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("crawls sites from a file and writes the CSV", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body>
<a href="/news/a">A</a>
<a href="/news/b">B</a>
</body></html>`)
		})
		mux.HandleFunc("/news/a", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body><h1>Stocks Rally</h1><article>Up day.</article></body></html>`)
		})
		mux.HandleFunc("/news/b", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body><h1>Stocks Slide</h1><article>Down day.</article></body></html>`)
		})

		dir := t.TempDir()
		sitesPath := filepath.Join(dir, "sites.txt")
		require.NoError(t, os.WriteFile(sitesPath, []byte(server.URL+"/\n"), 0644))
		outPath := filepath.Join(dir, "news.csv")

		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{
			outPath,
			"--sites-file", sitesPath,
			"--max-per-site", "10",
		}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Wrote 2 rows to "+outPath)

		f, err := os.Open(outPath)
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"url", "headline", "text", "published_iso"}, rows[0])
		assert.Equal(t, server.URL+"/news/a", rows[1][0])
		assert.Equal(t, "Stocks Rally", rows[1][1])
		assert.Equal(t, "", rows[1][3], "no date on the page means an empty published_iso")
	})

	t.Run("unknown flag returns an error", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{"--definitely-not-a-flag"}, &stdout, &stderr)

		assert.Error(t, err)
	})

	t.Run("help prints usage without error", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{"--help"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "newscrawl")
	})
}
