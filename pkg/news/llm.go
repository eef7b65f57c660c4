package news

import (
	"context"
	"fmt"

	"newsmood/pkg/llm"
)

// LLMSource asks the language model to write the headlines itself. Its
// articles carry the finished text in Detail and have no URL.
type LLMSource struct {
	client llm.Client
}

func NewLLMSource(client llm.Client) *LLMSource {
	return &LLMSource{client: client}
}

func (s *LLMSource) Name() string {
	return "LLM (" + s.client.ModelName() + ")"
}

func (s *LLMSource) Fetch(ctx context.Context, topic string, limit int) ([]Article, error) {
	content, err := s.client.Complete(ctx, "", llm.HeadlinesPrompt(topic, limit))
	if err != nil {
		return nil, fmt.Errorf("llm headlines: %w", err)
	}

	lines := llm.ParseHeadlines(content, limit)

	articles := make([]Article, 0, len(lines))
	for _, line := range lines {
		articles = append(articles, Article{
			Detail: line,
			Source: s.Name(),
		})
	}

	return articles, nil
}
