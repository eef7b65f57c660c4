package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

const googleNewsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>"Climate" - Google News</title>
<item>
  <title>Solar capacity hits record high - Reuters</title>
  <link>https://news.example.com/solar</link>
  <pubDate>Thu, 26 Feb 2026 10:00:00 GMT</pubDate>
  <description>&lt;a href="https://news.example.com/solar"&gt;Solar capacity hits record high&lt;/a&gt;&amp;nbsp;&lt;font color="#6f6f6f"&gt;Reuters&lt;/font&gt;</description>
</item>
<item>
  <title>Heatwave strains grid - AP News</title>
  <link>https://news.example.com/heat</link>
  <description>Grid operators warn of outages.</description>
</item>
<item>
  <title>Third story - BBC</title>
  <link>https://news.example.com/third</link>
</item>
</channel>
</rss>`

func TestRSSFetch(t *testing.T) {
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(googleNewsFeed))
	}))
	defer srv.Close()

	client := &RSSClient{httpClient: testHTTPClient(srv)}

	articles, err := client.Fetch(context.Background(), "Climate", 2)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Climate", gotQuery)
	assert.Equal(t, 2, len(articles))

	assert.Equal(t, "Solar capacity hits record high", articles[0].Headline)
	assert.Equal(t, "Reuters", articles[0].Publisher)
	assert.Equal(t, "https://news.example.com/solar", articles[0].URL)
	assert.Equal(t, "GoogleNews", articles[0].Source)
	assert.Equal(t, 2026, articles[0].PublishedAt.Year())

	assert.Equal(t, "Heatwave strains grid", articles[1].Headline)
	assert.Equal(t, "AP News", articles[1].Publisher)
	assert.Equal(t, "Grid operators warn of outages.", articles[1].Detail)
}

func TestSplitPublisher(t *testing.T) {
	headline, publisher := splitPublisher("Rates - what comes next - Bloomberg")
	assert.Equal(t, "Rates - what comes next", headline)
	assert.Equal(t, "Bloomberg", publisher)

	headline, publisher = splitPublisher("No publisher here")
	assert.Equal(t, "No publisher here", headline)
	assert.Equal(t, "", publisher)
}
