package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"newsmood/internal/model"
	"newsmood/internal/repository"

	"github.com/gin-gonic/gin"
)

type QueryLogStore interface {
	List(limit int) ([]model.QueryLogRecord, error)
	Count() (int, error)
}

type QueryLogHandler struct {
	store QueryLogStore
}

func NewQueryLogHandler(store QueryLogStore) *QueryLogHandler {
	return &QueryLogHandler{store: store}
}

func (h *QueryLogHandler) GetQueries(c *gin.Context) {
	limit := getQueryLimit(c)

	records, err := h.store.List(limit)
	if err != nil {
		slog.Error("error fetching query log", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query log error"})
		return
	}

	queries := make([]QueryLogResponse, 0, len(records))
	for _, rec := range records {
		queries = append(queries, QueryLogResponse{
			Topic:         rec.Topic,
			ArticlesFound: rec.ArticlesFound,
			Timestamp:     rec.Timestamp.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, QueryLogListResponse{
		Queries: queries,
		Limit:   limit,
	})
}

func (h *QueryLogHandler) GetStats(c *gin.Context) {
	records, err := h.store.List(0)
	if err != nil {
		slog.Error("error fetching query log", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Query log error"})
		return
	}

	stats := repository.TopicStats(records)

	res := make([]TopicStatResponse, 0, len(stats))
	for _, s := range stats {
		res = append(res, TopicStatResponse{
			Topic:         s.Topic,
			Queries:       s.Queries,
			ArticlesFound: s.ArticlesFound,
			AverageFound:  s.AverageFound,
			LastQueriedAt: s.LastQueriedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *QueryLogHandler) GetHealth(c *gin.Context) {
	_, err := h.store.Count()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"query_log": "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"query_log": "available",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	paramLimit := c.Query(name)

	if paramLimit == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(paramLimit)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", paramLimit, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 20
		maxLimit     = 200
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
