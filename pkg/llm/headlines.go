package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const headlinesPrompt = `Search and summarize the top %d latest news headlines and summaries related to "%s" from trusted sources.
Keep each item concise and informative: one headline followed by a one or two sentence summary.

Output as JSON only, no other text:
{
  "headlines": ["headline: summary", "headline: summary"]
}`

func HeadlinesPrompt(topic string, limit int) string {
	return fmt.Sprintf(headlinesPrompt, limit, topic)
}

var listMarker = regexp.MustCompile(`^(?:[-•*·]+|\d+[.)])\s*`)

// ParseHeadlines reads a model answer to HeadlinesPrompt. A JSON object is
// taken as authoritative, even when it lists no headlines; anything else is
// treated as plain text with one item per non-empty line.
func ParseHeadlines(content string, limit int) []string {
	raw, ok := jsonHeadlines(content)
	if !ok {
		raw = strings.Split(content, "\n")
	}

	if limit < 1 {
		limit = len(raw)
	}

	items := make([]string, 0, limit)
	for _, line := range raw {
		if len(items) >= limit {
			break
		}

		line = strings.ReplaceAll(strings.TrimSpace(line), "**", "")
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}

		items = append(items, line)
	}

	return items
}

// jsonHeadlines accepts entries as plain strings or as
// {"headline": ..., "summary": ...} objects.
func jsonHeadlines(content string) ([]string, bool) {
	var parsed struct {
		Headlines []json.RawMessage `json:"headlines"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &parsed); err != nil {
		return nil, false
	}

	lines := make([]string, 0, len(parsed.Headlines))
	for _, entry := range parsed.Headlines {
		var text string
		if err := json.Unmarshal(entry, &text); err == nil {
			lines = append(lines, text)
			continue
		}

		var item struct {
			Headline string `json:"headline"`
			Title    string `json:"title"`
			Summary  string `json:"summary"`
		}
		if err := json.Unmarshal(entry, &item); err != nil {
			continue
		}

		headline := strings.TrimSpace(item.Headline)
		if headline == "" {
			headline = strings.TrimSpace(item.Title)
		}
		summary := strings.TrimSpace(item.Summary)

		switch {
		case headline != "" && summary != "":
			lines = append(lines, headline+": "+summary)
		case headline != "":
			lines = append(lines, headline)
		default:
			lines = append(lines, summary)
		}
	}

	return lines, true
}
