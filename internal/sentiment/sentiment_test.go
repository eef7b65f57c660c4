package sentiment

import (
	"math"
	"testing"

	"newsmood/internal/model"

	"github.com/go-playground/assert/v2"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDefaultLexiconLoads(t *testing.T) {
	l := DefaultLexicon()

	assert.Equal(t, true, l.Len() > 200)

	p, ok := l.Lookup("Good")
	assert.Equal(t, true, ok)
	assert.Equal(t, 0.7, p)
}

func TestParseLexicon_Errors(t *testing.T) {
	_, err := ParseLexicon("good\n")
	assert.NotEqual(t, nil, err)

	_, err = ParseLexicon("good\tvery\n")
	assert.NotEqual(t, nil, err)

	l, err := ParseLexicon("# comment\n\ngood\t3\n")
	assert.Equal(t, nil, err)
	p, _ := l.Lookup("good")
	assert.Equal(t, 1.0, p)
}

func TestPolarity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "no lexicon words", text: "The committee met on Tuesday", want: 0},
		{name: "empty", text: "", want: 0},
		{name: "single word", text: "A good day for markets", want: 0.7},
		{name: "average of words", text: "Good and bad news", want: 0},
		{name: "intensifier", text: "very good", want: 0.91},
		{name: "negation", text: "not good", want: -0.35},
		{name: "contraction negation", text: "It isn't good", want: -0.35},
		{name: "curly apostrophe", text: "It isn’t good", want: -0.35},
		{name: "negation resets at clause end", text: "Not today. Good results", want: 0.7},
		{name: "clamped", text: "extremely perfect", want: 1},
		{name: "negation does not reach past other words", text: "There is no doubt the results were strong", want: 0.43},
		{name: "negation ends at verb", text: "Company does not expect a strong quarter", want: 0.43},
		{name: "short word keeps negation", text: "not a good quarter", want: -0.35},
		{name: "intensifier ends at longer word", text: "So far the quarterly results look good", want: 0.7},
		{name: "intensifier kept across short word", text: "so a good day", want: 0.91},
		{name: "negated intensifier", text: "not very good", want: -0.455},
	}

	l := DefaultLexicon()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Polarity(tt.text)
			if !approx(got, tt.want) {
				t.Errorf("Polarity(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultThreshold)

	assert.Equal(t, model.Positive, c.Classify("Bitcoin posts a strong, impressive rally"))
	assert.Equal(t, model.Negative, c.Classify("A terrible week with awful losses"))
	assert.Equal(t, model.Neutral, c.Classify("The central bank published its minutes"))
	assert.Equal(t, model.Negative, c.Classify("Analysts say the outlook is not good"))
	assert.Equal(t, model.Positive, c.Classify("Company does not expect a strong quarter"))
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier(DefaultThreshold)
	text := "Tech stocks had a great session despite worried investors"

	first := c.Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(text))
	}
}

func TestLabel_ThresholdsAreStrict(t *testing.T) {
	wide := NewClassifier(0.2)
	narrow := NewClassifier(0.1)

	assert.Equal(t, model.Neutral, wide.Label(0.2))
	assert.Equal(t, model.Positive, wide.Label(0.21))
	assert.Equal(t, model.Neutral, wide.Label(-0.2))
	assert.Equal(t, model.Negative, wide.Label(-0.21))

	assert.Equal(t, model.Positive, narrow.Label(0.15))
	assert.Equal(t, model.Negative, narrow.Label(-0.15))
	assert.Equal(t, model.Neutral, narrow.Label(0.1))
}

func TestScore(t *testing.T) {
	c := NewClassifier(0.1)

	polarity, label := c.Score("wonderful")

	assert.Equal(t, 1.0, polarity)
	assert.Equal(t, model.Positive, label)
	assert.Equal(t, 0.1, c.Threshold())
}

func TestSentimentEmoji(t *testing.T) {
	assert.Equal(t, "😊", model.Positive.Emoji())
	assert.Equal(t, "😐", model.Neutral.Emoji())
	assert.Equal(t, "😞", model.Negative.Emoji())
}
