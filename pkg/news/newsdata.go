package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const newsDataURL = "https://newsdata.io/api/1/latest"

type NewsDataClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsDataClient(apiKey string) *NewsDataClient {
	return &NewsDataClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsDataClient) Name() string {
	return "NewsData"
}

func (c *NewsDataClient) Fetch(ctx context.Context, topic string, limit int) ([]Article, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("q", topic)
	params.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, newsDataURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsdata request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsdata fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw newsDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsdata decode (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode/100 != 2 || raw.Status != "success" {
		return nil, fmt.Errorf("newsdata error (status %d): %s", resp.StatusCode, raw.errorMessage())
	}

	var results []newsDataResult
	if err := json.Unmarshal(raw.Results, &results); err != nil {
		return nil, fmt.Errorf("newsdata decode results: %w", err)
	}

	if len(results) > limit {
		results = results[:limit]
	}

	articles := make([]Article, 0, len(results))
	for _, item := range results {
		publishedAt, err := time.Parse("2006-01-02 15:04:05", item.PubDate)
		if err != nil {
			publishedAt = time.Time{}
		}

		publisher := item.SourceName
		if publisher == "" {
			publisher = item.SourceID
		}

		articles = append(articles, Article{
			Headline:    plainText(item.Title),
			Detail:      plainText(item.Description),
			URL:         item.Link,
			Publisher:   publisher,
			PublishedAt: publishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

// Results holds an array on success and an error object otherwise.
type newsDataResponse struct {
	Status  string          `json:"status"`
	Results json.RawMessage `json:"results"`
}

func (r newsDataResponse) errorMessage() string {
	var e struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(r.Results, &e); err == nil && e.Message != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	if r.Status != "" {
		return r.Status
	}
	return "unexpected response"
}

type newsDataResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	SourceID    string `json:"source_id"`
	SourceName  string `json:"source_name"`
	PubDate     string `json:"pubDate"`
}
