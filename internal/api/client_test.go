package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sword-picker/internal/versions"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/static/bolls/app/views/languages.json", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]LanguageGroup{
			{Language: "English", Translations: []Translation{
				{ShortName: "KJV", FullName: "King James Version"},
				{ShortName: "NIV", FullName: "New International Version"},
			}},
			{Language: "Ukrainian", Translations: []Translation{
				{ShortName: "UKRK", FullName: "Kulish"},
			}},
		})
	})
	mux.HandleFunc("/get-parallel-verses/", func(w http.ResponseWriter, r *http.Request) {
		var req ParallelVerseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		out := make([][]Verse, len(req.Translations))
		for i, tr := range req.Translations {
			out[i] = []Verse{{Verse: req.Verses[0], Text: "text of " + tr, Translation: tr}}
		}
		json.NewEncoder(w).Encode(out)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetCatalog(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient()
	c.SetBaseURL(srv.URL)

	catalog, err := c.GetCatalog(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, catalog.Len())

	r, ok := catalog.Lookup("ukrk")
	require.True(t, ok)
	assert.Equal(t, "uk", r.LanguageCode)
	assert.Equal(t, versions.CategoryBible, r.Category)

	r, _ = catalog.Lookup("KJV")
	assert.Equal(t, "en", r.LanguageCode)
}

func TestGetParallelVerses(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient()
	c.SetBaseURL(srv.URL)

	got, err := c.GetParallelVerses(context.Background(), ParallelVerseRequest{
		Translations: []string{"KJV", "NIV"},
		Verses:       []int{16},
		Chapter:      3,
		Book:         43,
	})
	require.NoError(t, err)
	assert.Equal(t, "text of NIV", got["NIV"][0].Text)
	assert.Len(t, got, 2)
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)
	_, err := c.GetLanguages(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStatus))
}

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "English", want: "en"},
		{input: "german", want: "de"},
		{input: "Ancient Greek", want: "grc"},
		{input: "Latin", want: "la"},
		{input: "uk", want: "uk"},
		{input: "Klingonish", want: "und"},
	}

	for _, tc := range tests {
		if got := LanguageCode(tc.input); got != tc.want {
			t.Fatalf("LanguageCode(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.NotZero(t, c.Len())

	_, ok := c.Lookup("ESV")
	assert.True(t, ok)
	assert.NotZero(t, c.CountByCategory()[versions.CategoryCommentary])

	for _, key := range c.Featured {
		_, ok := c.Lookup(key)
		assert.True(t, ok, "featured %s missing from catalog", key)
	}
}
