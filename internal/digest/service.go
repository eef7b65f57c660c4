package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsmood/internal/model"
	"newsmood/pkg/news"

	"github.com/google/uuid"
)

var ErrEmptyTopic = errors.New("topic is empty")

const DefaultMaxArticles = 5

type Summarizer interface {
	Summarize(ctx context.Context, topic, text string) (string, bool)
}

type Classifier interface {
	Score(text string) (float64, model.Sentiment)
}

type QueryLog interface {
	Append(record model.QueryLogRecord) error
}

type Cache interface {
	Get(ctx context.Context, source, topic string) ([]model.NewsItem, bool, error)
	Set(ctx context.Context, source, topic string, items []model.NewsItem) error
}

type Options struct {
	MaxArticles int
	// Summarizer is nil when the source already returns finished text.
	Summarizer Summarizer
	Cache      Cache
	Now        func() time.Time
}

type Service struct {
	source     news.Source
	classifier Classifier
	queryLog   QueryLog
	summarizer Summarizer
	cache      Cache
	limit      int
	now        func() time.Time
}

func NewService(source news.Source, classifier Classifier, queryLog QueryLog, opts Options) *Service {
	s := &Service{
		source:     source,
		classifier: classifier,
		queryLog:   queryLog,
		summarizer: opts.Summarizer,
		cache:      opts.Cache,
		limit:      opts.MaxArticles,
		now:        opts.Now,
	}

	if s.limit < 1 {
		s.limit = DefaultMaxArticles
	}
	if s.now == nil {
		s.now = time.Now
	}

	return s
}

func (s *Service) SourceName() string {
	return s.source.Name()
}

type Query struct {
	Topic        string
	PositiveOnly bool
	RequestID    string
}

type Result struct {
	ID           string
	Topic        string
	PositiveOnly bool
	Source       string
	Items        []model.ScoredItem
	Fetched      int
	Cached       bool
	// Warning is set when fetching failed; Items is then empty.
	Warning   string
	CreatedAt time.Time
}

// Run executes one query: fetch, summarize, classify, filter and log. Fetch
// failures do not return an error; they surface as Result.Warning with no
// items. Only an empty topic is rejected, before any outbound call.
func (s *Service) Run(ctx context.Context, q Query) (*Result, error) {
	topic := strings.TrimSpace(q.Topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	id := q.RequestID
	if id == "" {
		id = uuid.NewString()
	}

	res := &Result{
		ID:           id,
		Topic:        topic,
		PositiveOnly: q.PositiveOnly,
		Source:       s.source.Name(),
	}

	items, cached, err := s.fetch(ctx, topic)
	if err != nil {
		slog.Error("error fetching news", "error", err, "source", res.Source, "topic", topic, "request_id", id)
		res.Warning = fmt.Sprintf("Failed to fetch news from %s: %v", res.Source, err)
		items = nil
	}
	res.Cached = cached
	res.Fetched = len(items)

	scored := make([]model.ScoredItem, 0, len(items))
	for _, item := range items {
		polarity, label := s.classifier.Score(item.Text)
		scored = append(scored, model.ScoredItem{
			NewsItem:  item,
			Polarity:  polarity,
			Sentiment: label,
		})
	}

	res.Items = Filter(scored, q.PositiveOnly)
	res.CreatedAt = s.now()

	record := model.QueryLogRecord{
		Topic:         topic,
		ArticlesFound: len(res.Items),
		Timestamp:     res.CreatedAt,
	}
	if err := s.queryLog.Append(record); err != nil {
		slog.Error("error writing query log", "error", err, "topic", topic, "request_id", id)
	}

	slog.Info("query complete",
		"request_id", id,
		"topic", topic,
		"source", res.Source,
		"fetched", res.Fetched,
		"shown", len(res.Items),
		"positive_only", q.PositiveOnly,
		"cached", cached,
	)

	return res, nil
}

func (s *Service) fetch(ctx context.Context, topic string) ([]model.NewsItem, bool, error) {
	if s.cache != nil {
		items, ok, err := s.cache.Get(ctx, s.source.Name(), topic)
		if err != nil {
			slog.Warn("error reading item cache", "error", err, "topic", topic)
		} else if ok {
			return items, true, nil
		}
	}

	articles, err := s.source.Fetch(ctx, topic, s.limit)
	if err != nil {
		return nil, false, err
	}

	if len(articles) > s.limit {
		articles = articles[:s.limit]
	}

	items := make([]model.NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, s.toItem(ctx, topic, a))
	}

	if s.cache != nil && len(items) > 0 {
		if err := s.cache.Set(ctx, s.source.Name(), topic, items); err != nil {
			slog.Warn("error writing item cache", "error", err, "topic", topic)
		}
	}

	return items, false, nil
}

func (s *Service) toItem(ctx context.Context, topic string, a news.Article) model.NewsItem {
	item := model.NewsItem{
		Title:     a.Headline,
		URL:       a.URL,
		Publisher: a.Publisher,
		Source:    a.Source,
	}

	if s.summarizer == nil {
		item.Text = a.Detail
		if item.Text == "" {
			item.Text = a.Headline
		}
		return item
	}

	summary, ok := s.summarizer.Summarize(ctx, topic, articleText(a))
	item.Text = summary
	item.SummaryFailed = !ok
	return item
}

func articleText(a news.Article) string {
	headline := strings.TrimSpace(a.Headline)
	detail := strings.TrimSpace(a.Detail)

	switch {
	case headline == "":
		return detail
	case detail == "":
		return headline
	case strings.HasSuffix(headline, ".") || strings.HasSuffix(headline, "?") || strings.HasSuffix(headline, "!"):
		return headline + " " + detail
	default:
		return headline + ". " + detail
	}
}

// Filter keeps only positive items when positiveOnly is set. Order is kept.
func Filter(items []model.ScoredItem, positiveOnly bool) []model.ScoredItem {
	if !positiveOnly {
		return items
	}

	kept := make([]model.ScoredItem, 0, len(items))
	for _, item := range items {
		if item.Sentiment == model.Positive {
			kept = append(kept, item)
		}
	}
	return kept
}
