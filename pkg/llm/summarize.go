package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

const summarySystemPrompt = `You are a news editor. Given one news article about a topic, write a short synthesized summary.

Rules:
- 2 to 3 sentences, plain prose, no bullet points
- Neutral wording; keep names, numbers and dates from the article
- Do not invent facts that are not in the article`

const maxArticleChars = 4000

// Summarizer turns a raw article into a short summary. It never fails: when
// the model call errors, the summary is a visible placeholder instead.
type Summarizer struct {
	client Client
}

func NewSummarizer(client Client) *Summarizer {
	return &Summarizer{client: client}
}

func (s *Summarizer) Summarize(ctx context.Context, topic, text string) (string, bool) {
	prompt := fmt.Sprintf("Topic: %s\n\nArticle:\n%s", topic, truncate(text, maxArticleChars))

	content, err := s.client.Complete(ctx, summarySystemPrompt, prompt)
	if err != nil {
		slog.Error("error summarizing article", "error", err, "topic", topic, "model", s.client.ModelName())
		return fmt.Sprintf("Error summarizing article: %v", err), false
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "Error summarizing article: empty response", false
	}

	return content, true
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
