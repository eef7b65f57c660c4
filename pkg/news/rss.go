package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const googleNewsSearchURL = "https://news.google.com/rss/search"

// RSSClient searches the Google News RSS endpoint.
type RSSClient struct {
	httpClient *http.Client
}

func NewRSSClient() *RSSClient {
	return &RSSClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *RSSClient) Name() string {
	return "GoogleNews"
}

func (c *RSSClient) Fetch(ctx context.Context, topic string, limit int) ([]Article, error) {
	params := url.Values{}
	params.Set("q", topic)
	params.Set("hl", "en-US")
	params.Set("gl", "US")
	params.Set("ceid", "US:en")

	parser := gofeed.NewParser()
	parser.Client = c.httpClient

	feed, err := parser.ParseURLWithContext(googleNewsSearchURL+"?"+params.Encode(), ctx)
	if err != nil {
		return nil, fmt.Errorf("rss fetch: %w", err)
	}

	items := feed.Items
	if len(items) > limit {
		items = items[:limit]
	}

	articles := make([]Article, 0, len(items))
	for _, item := range items {
		headline, publisher := splitPublisher(plainText(item.Title))

		a := Article{
			Headline:  headline,
			Detail:    plainText(item.Description),
			URL:       item.Link,
			Publisher: publisher,
			Source:    c.Name(),
		}

		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		}

		articles = append(articles, a)
	}

	return articles, nil
}

// Google News titles end with " - Publisher".
func splitPublisher(title string) (string, string) {
	idx := strings.LastIndex(title, " - ")
	if idx <= 0 {
		return title, ""
	}
	return title[:idx], title[idx+3:]
}
