package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"newsmood/internal/model"

	"github.com/redis/go-redis/v9"
)

const itemCachePrefix = "newsmood:items:"

// ItemCache keeps fetched and summarized items per source and topic so a
// repeated query skips the network. Sentiment is not cached.
type ItemCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewItemCache(rdb *redis.Client, ttl time.Duration) *ItemCache {
	return &ItemCache{rdb: rdb, ttl: ttl}
}

func itemCacheKey(source, topic string) string {
	return itemCachePrefix + strings.ToLower(source) + ":" + strings.ToLower(strings.TrimSpace(topic))
}

func (c *ItemCache) Get(ctx context.Context, source, topic string) ([]model.NewsItem, bool, error) {
	raw, err := c.rdb.Get(ctx, itemCacheKey(source, topic)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []model.NewsItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}

	return items, true, nil
}

func (c *ItemCache) Set(ctx context.Context, source, topic string, items []model.NewsItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, itemCacheKey(source, topic), raw, c.ttl).Err()
}
