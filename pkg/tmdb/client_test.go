package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFallbackFiltersCatalog(t *testing.T) {
	client := New("")

	results, fallback := client.Search(context.Background(), "inception")

	assert.True(t, fallback)
	assert.Len(t, results, 1)
	assert.Equal(t, "Inception", results[0].Title)
	assert.Equal(t, 27205, results[0].ID)
}

func TestSearchFallbackNoMatchReturnsWholeCatalog(t *testing.T) {
	client := New("")

	results, fallback := client.Search(context.Background(), "zzzz no such movie")

	assert.True(t, fallback)
	assert.Len(t, results, len(fallbackCatalog))
}

func TestSearchFallbackCaseInsensitive(t *testing.T) {
	client := New("")

	results, _ := client.Search(context.Background(), "THE MATRIX")

	assert.Len(t, results, 1)
	assert.Equal(t, "The Matrix", results[0].Title)
}

func TestDetailsFallback(t *testing.T) {
	client := New("")

	candidate, err := client.Details(context.Background(), 27205)

	assert.NoError(t, err)
	assert.Equal(t, "Inception", candidate.Title)
	assert.Equal(t, "2010-07-15", candidate.ReleaseDate)
	assert.Equal(t, 2010, candidate.Year())
}

func TestDetailsNotFound(t *testing.T) {
	client := New("")

	candidate, err := client.Details(context.Background(), 1)

	assert.Nil(t, candidate)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Dune", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"id":438631,"title":"Dune","release_date":"2021-09-15","overview":"Paul Atreides...","poster_path":"/d5NXSklXo0qyIYkgV94XAgMIckC.jpg"}]}`))
	}))
	defer server.Close()

	client := NewWithURLs("test-key", server.URL, server.URL)

	results, fallback := client.Search(context.Background(), "Dune")

	assert.False(t, fallback)
	assert.Len(t, results, 1)
	assert.Equal(t, 438631, results[0].ID)
	assert.Equal(t, "Dune", results[0].Title)
}

func TestSearchLiveFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewWithURLs("test-key", server.URL, server.URL)

	results, fallback := client.Search(context.Background(), "inception")

	assert.True(t, fallback)
	assert.Len(t, results, 1)
	assert.Equal(t, "Inception", results[0].Title)
}

func TestDetailsLive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/438631", r.URL.Path)
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":438631,"title":"Dune","release_date":"2021-09-15","overview":"Paul Atreides...","poster_path":"/d5NXSklXo0qyIYkgV94XAgMIckC.jpg"}`))
	}))
	defer server.Close()

	client := NewWithURLs("test-key", server.URL, server.URL)

	candidate, err := client.Details(context.Background(), 438631)

	assert.NoError(t, err)
	assert.Equal(t, "Dune", candidate.Title)
	assert.Equal(t, 2021, candidate.Year())
}

func TestDetailsLiveFailureFallsBackToCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewWithURLs("test-key", server.URL, server.URL)

	candidate, err := client.Details(context.Background(), 603)

	assert.NoError(t, err)
	assert.Equal(t, "The Matrix", candidate.Title)
}
