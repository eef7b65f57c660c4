package sentiment

import "newsmood/internal/model"

const DefaultThreshold = 0.2

// Classifier buckets lexicon polarity into positive, neutral and negative.
// Scores strictly above the threshold are positive, strictly below its
// negation are negative.
type Classifier struct {
	lexicon   *Lexicon
	threshold float64
}

func NewClassifier(threshold float64) *Classifier {
	return NewClassifierWithLexicon(DefaultLexicon(), threshold)
}

func NewClassifierWithLexicon(lexicon *Lexicon, threshold float64) *Classifier {
	return &Classifier{lexicon: lexicon, threshold: threshold}
}

func (c *Classifier) Threshold() float64 {
	return c.threshold
}

func (c *Classifier) Score(text string) (float64, model.Sentiment) {
	polarity := c.lexicon.Polarity(text)
	return polarity, c.Label(polarity)
}

func (c *Classifier) Classify(text string) model.Sentiment {
	_, label := c.Score(text)
	return label
}

func (c *Classifier) Label(polarity float64) model.Sentiment {
	switch {
	case polarity > c.threshold:
		return model.Positive
	case polarity < -c.threshold:
		return model.Negative
	default:
		return model.Neutral
	}
}
