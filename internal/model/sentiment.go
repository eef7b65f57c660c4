package model

type Sentiment string

const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
)

func (s Sentiment) Emoji() string {
	switch s {
	case Positive:
		return "😊"
	case Negative:
		return "😞"
	default:
		return "😐"
	}
}
