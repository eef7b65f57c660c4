package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestHeadlinesPrompt(t *testing.T) {
	prompt := HeadlinesPrompt("Bitcoin", 5)

	assert.Equal(t, true, strings.Contains(prompt, `top 5 latest news headlines`))
	assert.Equal(t, true, strings.Contains(prompt, `related to "Bitcoin"`))
}

func TestParseHeadlines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		limit   int
		want    []string
	}{
		{
			name:    "json",
			content: `{"headlines":["ETF inflows rise: Funds saw record demand.","Miners expand: Hashrate climbs."]}`,
			limit:   5,
			want:    []string{"ETF inflows rise: Funds saw record demand.", "Miners expand: Hashrate climbs."},
		},
		{
			name:    "fenced json",
			content: "```json\n{\"headlines\":[\"One\",\"  Two  \"]}\n```",
			limit:   5,
			want:    []string{"One", "Two"},
		},
		{
			name:    "bullet text",
			content: "- **Bitcoin** hits a new high\n• ETF flows stay strong\n\n* Miners rally\n1. Regulators weigh rules\n2) Exchange outage ends",
			limit:   5,
			want: []string{
				"Bitcoin hits a new high",
				"ETF flows stay strong",
				"Miners rally",
				"Regulators weigh rules",
				"Exchange outage ends",
			},
		},
		{
			name:    "capped at limit",
			content: "a\nb\nc\nd\ne\nf\ng",
			limit:   5,
			want:    []string{"a", "b", "c", "d", "e"},
		},
		{
			name:    "json with empty entries",
			content: `{"headlines":["", "Only one"]}`,
			limit:   5,
			want:    []string{"Only one"},
		},
		{
			name:    "json with no headlines",
			content: `{"headlines": []}`,
			limit:   5,
			want:    []string{},
		},
		{
			name:    "json objects",
			content: "```json\n{\"headlines\": [\n  {\"headline\": \"A\", \"summary\": \"B\"},\n  {\"title\": \"Rates hold\"},\n  {\"summary\": \"Only a summary\"},\n  42\n]}\n```",
			limit:   5,
			want:    []string{"A: B", "Rates hold", "Only a summary"},
		},
		{
			name:    "json objects capped at limit",
			content: `{"headlines":[{"headline":"One"},{"headline":"Two"},{"headline":"Three"}]}`,
			limit:   2,
			want:    []string{"One", "Two"},
		},
		{
			name:    "empty",
			content: "   \n\n",
			limit:   5,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseHeadlines(tt.content, tt.limit))
		})
	}
}
