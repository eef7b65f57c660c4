package news

import (
	"context"
	"time"
)

type Article struct {
	Headline    string
	Detail      string
	URL         string
	Publisher   string
	PublishedAt time.Time
	Source      string
}

// Source fetches at most limit articles about topic. Sources that return raw
// articles leave summarizing to the caller.
type Source interface {
	Fetch(ctx context.Context, topic string, limit int) ([]Article, error)
	Name() string
}
