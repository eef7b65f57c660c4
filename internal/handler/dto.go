package handler

type DigestRequest struct {
	Topic        string `json:"topic"`
	PositiveOnly bool   `json:"positive_only"`
}

type ItemResponse struct {
	Title         string  `json:"title,omitempty"`
	Text          string  `json:"text"`
	URL           string  `json:"url,omitempty"`
	Publisher     string  `json:"publisher,omitempty"`
	Source        string  `json:"source"`
	Sentiment     string  `json:"sentiment"`
	Emoji         string  `json:"emoji"`
	Polarity      float64 `json:"polarity"`
	SummaryFailed bool    `json:"summary_failed,omitempty"`
}

type DigestResponse struct {
	ID           string         `json:"id"`
	Topic        string         `json:"topic"`
	PositiveOnly bool           `json:"positive_only"`
	Source       string         `json:"source"`
	Fetched      int            `json:"fetched"`
	Count        int            `json:"count"`
	Cached       bool           `json:"cached"`
	Warning      string         `json:"warning,omitempty"`
	CreatedAt    string         `json:"created_at"`
	Items        []ItemResponse `json:"items"`
}

type QueryLogResponse struct {
	Topic         string `json:"topic"`
	ArticlesFound int    `json:"articles_found"`
	Timestamp     string `json:"timestamp"`
}

type QueryLogListResponse struct {
	Queries []QueryLogResponse `json:"queries"`
	Limit   int                `json:"limit"`
}

type TopicStatResponse struct {
	Topic         string  `json:"topic"`
	Queries       int     `json:"queries"`
	ArticlesFound int     `json:"articles_found"`
	AverageFound  float64 `json:"average_found"`
	LastQueriedAt string  `json:"last_queried_at"`
}
