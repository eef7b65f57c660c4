package sentiment

import (
	"bufio"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

//go:embed lexicon.tsv
var lexiconTSV string

// Polarity multipliers for adverbs that strengthen or weaken the next word.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"so":         1.3,
	"too":        1.3,
	"highly":     1.3,
	"truly":      1.3,
	"remarkably": 1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"absolutely": 1.5,
	"quite":      1.1,
	"somewhat":   0.7,
	"slightly":   0.5,
	"barely":     0.3,
}

var negations = map[string]bool{
	"not":    true,
	"no":     true,
	"never":  true,
	"cannot": true,
	"n't":    true,
}

const negationFactor = -0.5

type Lexicon struct {
	words map[string]float64
}

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	l, err := ParseLexicon(lexiconTSV)
	if err != nil {
		panic(fmt.Sprintf("embedded sentiment lexicon: %v", err))
	}
	return l
})

// DefaultLexicon returns the embedded adjective lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon()
}

// ParseLexicon reads "word<TAB>polarity" lines. Blank lines and lines starting
// with # are skipped.
func ParseLexicon(src string) (*Lexicon, error) {
	l := &Lexicon{words: make(map[string]float64)}

	scanner := bufio.NewScanner(strings.NewReader(src))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected word and polarity, got %q", line, text)
		}

		polarity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		l.words[strings.ToLower(fields[0])] = clamp(polarity)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Lexicon) Lookup(word string) (float64, bool) {
	p, ok := l.words[strings.ToLower(word)]
	return p, ok
}

func (l *Lexicon) Len() int {
	return len(l.words)
}

// Polarity averages the polarity of every lexicon word in text. An intensifier
// scales the lexicon word right after it and a negation flips and halves it.
// Any other word longer than one letter cancels a pending negation, longer
// than two letters a pending intensifier. Text without lexicon words scores 0.
func (l *Lexicon) Polarity(text string) float64 {
	var (
		sum         float64
		assessments int
		negated     bool
		multiplier  = 1.0
	)

	for _, tok := range tokenize(text) {
		if tok == "" {
			negated = false
			multiplier = 1.0
			continue
		}

		if negations[tok] {
			negated = true
			continue
		}

		if m, ok := intensifiers[tok]; ok {
			multiplier *= m
			continue
		}

		p, ok := l.words[tok]
		if !ok {
			// Other words end the reach of a pending negation or modifier.
			n := utf8.RuneCountInString(tok)
			if n > 1 {
				negated = false
			}
			if n > 2 {
				multiplier = 1.0
			}
			continue
		}

		p *= multiplier
		if negated {
			p *= negationFactor
		}

		sum += clamp(p)
		assessments++
		negated = false
		multiplier = 1.0
	}

	if assessments == 0 {
		return 0
	}

	return clamp(sum / float64(assessments))
}

// tokenize lowercases text into words. Clause punctuation becomes an empty
// token and contractions ending in n't yield a separate "n't".
func tokenize(text string) []string {
	var (
		tokens []string
		sb     strings.Builder
	)

	flush := func() {
		if sb.Len() == 0 {
			return
		}
		word := sb.String()
		sb.Reset()

		word = strings.Trim(word, "'")
		if word == "" {
			return
		}

		if stem, ok := strings.CutSuffix(word, "n't"); ok {
			if stem != "" {
				tokens = append(tokens, stem)
			}
			tokens = append(tokens, "n't")
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case r == '’' || r == '\'':
			sb.WriteRune('\'')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == '.' || r == ',' || r == ';' || r == ':' || r == '!' || r == '?':
			flush()
			tokens = append(tokens, "")
		default:
			flush()
		}
	}
	flush()

	return tokens
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
