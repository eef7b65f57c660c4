package model

// NewsItem is one displayed result. Title is empty when the source produced
// the text directly instead of returning an article.
type NewsItem struct {
	Title         string `json:"title,omitempty"`
	Text          string `json:"text"`
	URL           string `json:"url,omitempty"`
	Publisher     string `json:"publisher,omitempty"`
	Source        string `json:"source"`
	SummaryFailed bool   `json:"summary_failed,omitempty"`
}

type ScoredItem struct {
	NewsItem
	Polarity  float64   `json:"polarity"`
	Sentiment Sentiment `json:"sentiment"`
}
