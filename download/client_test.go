package download

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakePDF = bytes.Repeat([]byte("%PDF-1.4 bulletin "), 1000) // ~18 KB

func TestFetchTriesPatternsInOrder(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path == "/boc_20260211_2.pdf" {
			http.NotFound(w, r)
			return
		}
		w.Write(fakePDF)
	}))
	defer ts.Close()

	dir := t.TempDir()
	c := NewClient(dir)
	c.SetURLPatterns([]string{
		ts.URL + "/boc_%s_2.pdf",
		ts.URL + "/boc_%s_1.pdf",
	})

	date := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	path, err := c.Fetch(date, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "boc_20260211.pdf"), path)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fakePDF, data)
}

func TestFetchReusesCachedFile(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write(fakePDF)
	}))
	defer ts.Close()

	dir := t.TempDir()
	c := NewClient(dir)
	c.SetURLPatterns([]string{ts.URL + "/boc_%s.pdf"})

	date := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	_, err := c.Fetch(date, false)
	require.NoError(t, err)
	_, err = c.Fetch(date, false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits), "cached bulletin must not be re-downloaded")

	_, err = c.Fetch(date, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits), "force must re-download")
}

func TestFetchRejectsSmallBodies(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a bulletin"))
	}))
	defer ts.Close()

	c := NewClient(t.TempDir())
	c.SetURLPatterns([]string{ts.URL + "/boc_%s.pdf"})

	_, err := c.Fetch(time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC), false)
	require.Error(t, err)
}
