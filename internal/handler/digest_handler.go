package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"newsmood/internal/digest"

	"github.com/gin-gonic/gin"
)

const emptyTopicMessage = "Please enter a topic."

type Digester interface {
	Run(ctx context.Context, q digest.Query) (*digest.Result, error)
	SourceName() string
}

type DigestHandler struct {
	digester Digester
}

func NewDigestHandler(digester Digester) *DigestHandler {
	return &DigestHandler{digester: digester}
}

type pageData struct {
	Topic        string
	PositiveOnly bool
	SourceName   string
	Warning      string
	Result       *digest.Result
}

func (h *DigestHandler) GetIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{SourceName: h.digester.SourceName()})
}

func (h *DigestHandler) PostIndex(c *gin.Context) {
	data := pageData{
		Topic:        c.PostForm("topic"),
		PositiveOnly: isChecked(c.PostForm("positive_only")),
		SourceName:   h.digester.SourceName(),
	}

	result, err := h.digester.Run(c.Request.Context(), digest.Query{
		Topic:        data.Topic,
		PositiveOnly: data.PositiveOnly,
		RequestID:    requestID(c),
	})

	if errors.Is(err, digest.ErrEmptyTopic) {
		data.Warning = emptyTopicMessage
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	if err != nil {
		slog.Error("error running query", "error", err, "request_id", requestID(c))
		data.Warning = "Something went wrong, please try again."
		c.HTML(http.StatusInternalServerError, "index.html", data)
		return
	}

	data.Result = result
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *DigestHandler) PostDigest(c *gin.Context) {
	var req DigestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.digester.Run(c.Request.Context(), digest.Query{
		Topic:        req.Topic,
		PositiveOnly: req.PositiveOnly,
		RequestID:    requestID(c),
	})

	if errors.Is(err, digest.ErrEmptyTopic) {
		c.JSON(http.StatusBadRequest, gin.H{"error": emptyTopicMessage})
		return
	}

	if err != nil {
		slog.Error("error running query", "error", err, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, toDigestResponse(result))
}

func toDigestResponse(r *digest.Result) DigestResponse {
	items := make([]ItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, ItemResponse{
			Title:         item.Title,
			Text:          item.Text,
			URL:           item.URL,
			Publisher:     item.Publisher,
			Source:        item.Source,
			Sentiment:     string(item.Sentiment),
			Emoji:         item.Sentiment.Emoji(),
			Polarity:      item.Polarity,
			SummaryFailed: item.SummaryFailed,
		})
	}

	return DigestResponse{
		ID:           r.ID,
		Topic:        r.Topic,
		PositiveOnly: r.PositiveOnly,
		Source:       r.Source,
		Fetched:      r.Fetched,
		Count:        len(r.Items),
		Cached:       r.Cached,
		Warning:      r.Warning,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		Items:        items,
	}
}

func isChecked(v string) bool {
	switch v {
	case "true", "on", "1":
		return true
	default:
		return false
	}
}
