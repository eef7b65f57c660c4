// Package app wires configuration into the clients, stores and services the
// binaries share.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"newsmood/db"
	"newsmood/internal/config"
	"newsmood/internal/digest"
	"newsmood/internal/model"
	"newsmood/internal/repository"
	"newsmood/internal/sentiment"
	"newsmood/pkg/llm"
	"newsmood/pkg/news"

	"github.com/redis/go-redis/v9"
)

// QueryLogReader is the read side of the query log.
type QueryLogReader interface {
	List(limit int) ([]model.QueryLogRecord, error)
	Count() (int, error)
}

type App struct {
	Digest   *digest.Service
	QueryLog QueryLogReader

	closers []func() error
}

// NewLLMClient picks the model provider named in cfg.
func NewLLMClient(cfg config.LLM) (llm.Client, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return llm.NewGeminiClient(cfg.APIKey, cfg.Model), nil
	case config.ProviderOpenAI:
		return llm.NewOpenAIClient(cfg.APIKey, cfg.Model), nil
	case config.ProviderAnthropic:
		return llm.NewAnthropicClient(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("app: unknown llm provider %q", cfg.Provider)
	}
}

// NewSource builds the configured news source. The returned summarizer is nil
// for the llm source, which already produces finished bullets.
func NewSource(cfg *config.Config, client llm.Client) (news.Source, digest.Summarizer, error) {
	switch cfg.NewsSource {
	case config.SourceLLM:
		return news.NewLLMSource(client), nil, nil
	case config.SourceNewsData:
		return news.NewNewsDataClient(cfg.NewsDataAPIKey), llm.NewSummarizer(client), nil
	case config.SourceRSS:
		return news.NewRSSClient(), llm.NewSummarizer(client), nil
	default:
		return nil, nil, fmt.Errorf("app: unknown news source %q", cfg.NewsSource)
	}
}

// NewQueryLog opens the CSV log and, when DatabaseURL is set, the Postgres
// table. Writes go to both; reads come from Postgres when available.
func NewQueryLog(cfg *config.Config) (digest.QueryLog, QueryLogReader, *sql.DB, error) {
	csvLog := repository.NewCSVQueryLog(cfg.QueryLogPath)

	if cfg.DatabaseURL == "" {
		return csvLog, csvLog, nil, nil
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("app: connect postgres: %w", err)
	}

	pgLog := repository.NewQueryLogRepository(conn)
	if err := pgLog.EnsureSchema(); err != nil {
		conn.Close()
		return nil, nil, nil, fmt.Errorf("app: ensure query_log schema: %w", err)
	}

	return repository.NewMultiQueryLog(csvLog, pgLog), pgLog, conn, nil
}

// NewCache connects to Redis when RedisURL is set. A nil cache means caching
// is off.
func NewCache(ctx context.Context, cfg *config.Config) (*repository.ItemCache, *redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil, nil
	}

	rdb, err := db.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("app: connect redis: %w", err)
	}

	return repository.NewItemCache(rdb, cfg.CacheTTL), rdb, nil
}

// Build assembles the pipeline from cfg. Call Close when done.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	client, err := NewLLMClient(cfg.LLM)
	if err != nil {
		return nil, err
	}

	source, summarizer, err := NewSource(cfg, client)
	if err != nil {
		return nil, err
	}

	queryLog, reader, conn, err := NewQueryLog(cfg)
	if err != nil {
		return nil, err
	}
	if conn != nil {
		a.closers = append(a.closers, conn.Close)
	}
	a.QueryLog = reader

	opts := digest.Options{
		MaxArticles: cfg.MaxArticles,
		Summarizer:  summarizer,
	}

	cache, rdb, err := NewCache(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	if cache != nil {
		opts.Cache = cache
		a.closers = append(a.closers, rdb.Close)
	}

	classifier := sentiment.NewClassifier(cfg.SentimentThreshold)
	a.Digest = digest.NewService(source, classifier, queryLog, opts)

	slog.Info("app ready",
		"source", source.Name(),
		"provider", cfg.LLM.Provider,
		"model", client.ModelName(),
		"threshold", classifier.Threshold(),
		"postgres", conn != nil,
		"redis", cache != nil,
	)

	return a, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
