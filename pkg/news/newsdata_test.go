package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func newsDataPayload(n int) map[string]interface{} {
	results := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, map[string]interface{}{
			"article_id":  "id",
			"title":       "Bitcoin ETF Sees Record Inflows",
			"description": "<p>Investors poured <b>$1B</b> into spot funds.</p>",
			"link":        "https://example.com/btc-etf",
			"source_id":   "coindesk",
			"source_name": "CoinDesk",
			"pubDate":     "2026-02-26 11:02:00",
		})
	}
	return map[string]interface{}{
		"status":       "success",
		"totalResults": n,
		"results":      results,
	}
}

func TestNewsDataFetch(t *testing.T) {
	var gotQuery url.Values
	var gotPath string
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(newsDataPayload(1))
	}))
	defer srv.Close()

	client := &NewsDataClient{
		apiKey:     "test-key",
		httpClient: testHTTPClient(srv),
	}

	articles, err := client.Fetch(context.Background(), "Bitcoin", 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, requests)
	assert.Equal(t, "/api/1/latest", gotPath)
	assert.Equal(t, "test-key", gotQuery.Get("apikey"))
	assert.Equal(t, "Bitcoin", gotQuery.Get("q"))
	assert.Equal(t, "en", gotQuery.Get("language"))
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Bitcoin ETF Sees Record Inflows", a.Headline)
	assert.Equal(t, "Investors poured $1B into spot funds.", a.Detail)
	assert.Equal(t, "https://example.com/btc-etf", a.URL)
	assert.Equal(t, "CoinDesk", a.Publisher)
	assert.Equal(t, "NewsData", a.Source)
	assert.Equal(t, 2026, a.PublishedAt.Year())
	assert.Equal(t, time.February, a.PublishedAt.Month())
}

func TestNewsDataFetch_CapsAtLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(newsDataPayload(10))
	}))
	defer srv.Close()

	client := &NewsDataClient{apiKey: "k", httpClient: testHTTPClient(srv)}

	articles, err := client.Fetch(context.Background(), "Bitcoin", 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 5, len(articles))
}

func TestNewsDataFetch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","results":{"message":"API key is invalid.","code":"Unauthorized"}}`))
	}))
	defer srv.Close()

	client := &NewsDataClient{apiKey: "bad", httpClient: testHTTPClient(srv)}

	articles, err := client.Fetch(context.Background(), "Bitcoin", 5)

	assert.Equal(t, 0, len(articles))
	assert.NotEqual(t, nil, err)
	assert.Equal(t, "newsdata error (status 401): API key is invalid. (Unauthorized)", err.Error())
}

func TestNewsDataFetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer srv.Close()

	client := &NewsDataClient{apiKey: "k", httpClient: testHTTPClient(srv)}

	_, err := client.Fetch(context.Background(), "Bitcoin", 5)

	assert.NotEqual(t, nil, err)
}
