package catalog

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookvibe/internal/config"
	"github.com/mmcdole/bookvibe/internal/domain"
)

const volumesJSON = `{
  "kind": "books#volumes",
  "totalItems": 2,
  "items": [
    {
      "id": "zyTCAlFPjgYC",
      "volumeInfo": {
        "title": "The Google Story",
        "authors": ["David A. Vise", "Mark Malseed"],
        "publishedDate": "2005-11-15",
        "pageCount": 207,
        "averageRating": 3.5,
        "ratingsCount": 136,
        "categories": ["Browsers (Computer programs)"],
        "imageLinks": {"smallThumbnail": "http://books.example/s.jpg", "thumbnail": "http://books.example/t.jpg"},
        "language": "en",
        "previewLink": "http://books.example/preview"
      },
      "saleInfo": {"retailPrice": {"amount": 9.99, "currencyCode": "USD"}}
    },
    {"id": "untitled", "volumeInfo": {"authors": ["Nobody"]}}
  ]
}`

func testClient(t *testing.T, url string) *Client {
	t.Helper()
	cfg := config.Default().Catalog
	cfg.BaseURL = url
	cfg.RequestsPerSecond = 0
	c := NewClient(cfg, nil)
	c.backoff = time.Millisecond
	t.Cleanup(c.Close)
	return c
}

func TestSearchBuildsQueryAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "dragons subject:fantasy", q.Get("q"))
		assert.Equal(t, "relevance", q.Get("orderBy"))
		assert.Equal(t, "40", q.Get("maxResults"))
		assert.Equal(t, "books", q.Get("printType"))
		assert.Equal(t, "en", q.Get("langRestrict"))
		assert.Empty(t, q.Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(volumesJSON))
	}))
	defer srv.Close()

	books, err := testClient(t, srv.URL).Search(context.Background(), domain.Query{Terms: "dragons", Genre: "fantasy"})
	require.NoError(t, err)
	require.Len(t, books, 2)

	b := books[0]
	assert.Equal(t, "zyTCAlFPjgYC", b.ID)
	assert.Equal(t, "David A. Vise, Mark Malseed", b.AuthorLine())
	assert.Equal(t, "2005", b.PublishedYear())
	assert.Equal(t, "http://books.example/t.jpg", b.CoverURL())
	price, ok := b.CatalogPrice()
	assert.True(t, ok)
	assert.Equal(t, 9.99, price.Amount)
	assert.False(t, books[1].HasTitleAndAuthor())
}

func TestSearchEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind":"books#volumes","totalItems":0}`))
	}))
	defer srv.Close()

	books, err := testClient(t, srv.URL).Search(context.Background(), domain.Query{Terms: "zzzz"})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSearchDefaultMakesOneAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	c.backoff = time.Second

	start := time.Now()
	_, err := c.Search(context.Background(), domain.Query{Terms: "google"})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "503")
	assert.NotContains(t, err.Error(), "retries")
	assert.Equal(t, int32(1), calls.Load())
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Zero(t, c.httpClient.Timeout)
}

func TestSearchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(volumesJSON))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	c.maxRetries = 2

	books, err := c.Search(context.Background(), domain.Query{Terms: "google"})
	require.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSearchClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	c.maxRetries = 2

	_, err := c.Search(context.Background(), domain.Query{Terms: "google"})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSearchGivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var logs bytes.Buffer
	c := testClient(t, srv.URL)
	c.maxRetries = 2
	c.logger = slog.New(slog.NewTextHandler(&logs, nil))

	_, err := c.Search(context.Background(), domain.Query{Terms: "google"})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "after 2 retries")
	assert.Equal(t, int32(3), calls.Load())

	// Only attempts that are followed by a retry log the warning
	assert.Equal(t, 2, strings.Count(logs.String(), "retrying"))
	assert.NotContains(t, logs.String(), "attempt=3")
}

func TestSearchAPIKey(t *testing.T) {
	c := testClient(t, "https://books.example/volumes")
	c.apiKey = "k"
	assert.Contains(t, c.searchURL(domain.Query{Terms: "a b"}), "key=k")
	assert.Contains(t, c.searchURL(domain.Query{Terms: "a b"}), "q=a+b")
}

func TestSampleBooks(t *testing.T) {
	books := SampleBooks()
	require.Len(t, books, 8)
	for _, b := range books {
		assert.True(t, b.HasTitleAndAuthor(), b.ID)
		assert.True(t, b.HasCover(), b.ID)
		_, ok := b.CatalogPrice()
		assert.True(t, ok, b.ID)
	}
	assert.Equal(t, "sample-1", books[0].ID)
	assert.Equal(t, "Dune", books[7].Title())

	books[0].VolumeInfo.Title = "changed"
	assert.Equal(t, "The Great Gatsby", SampleBooks()[0].Title())
}
