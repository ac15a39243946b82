package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ritvik-Gupta/scraprs/internal/config"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&config.Config{WikiBaseURL: baseURL})
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_PrintsLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<div id="bodyContent"><p>
			<a href="/wiki/Ownership_(computer_science)">o</a>
			<a href="#cite_note-1">1</a>
			<a href="/wiki/Rust_(programming_language)">r</a>
		</p></div>`))
	}))
	defer srv.Close()

	out, err := execute(t, srv.URL, "/wiki/Rust_(programming_language)")
	require.NoError(t, err)
	assert.Equal(t, "[\"/wiki/Ownership_(computer_science)\" \"/wiki/Rust_(programming_language)\"]\n", out)
}

func TestRoot_MissingArgument(t *testing.T) {
	out, err := execute(t, "http://127.0.0.1:1")
	assert.ErrorIs(t, err, scrapeerr.ErrInvalidInput)
	assert.Empty(t, out)
}

func TestRoot_InvalidRef(t *testing.T) {
	out, err := execute(t, "http://127.0.0.1:1", "https://en.wikipedia.org/wiki/Rust")
	assert.ErrorIs(t, err, scrapeerr.ErrInvalidInput)
	assert.Empty(t, out)
}
