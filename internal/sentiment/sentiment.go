// Package sentiment maps transcribed text to a three-way polarity label
// using a VADER compound score.
package sentiment

import "github.com/jonreiter/govader"

// Label is one of the three sentiment classes.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Thresholds on the compound score. Scores inside the open interval
// (negative, positive) are neutral.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Scorer returns a compound polarity score in [-1, 1] for a text.
type Scorer func(text string) float64

// NewScorer returns a Scorer backed by the VADER lexicon. The analyzer
// is stateless per call, so the returned func is safe to reuse across
// videos.
func NewScorer() Scorer {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	return func(text string) float64 {
		return analyzer.PolarityScores(text).Compound
	}
}

// Classify maps a compound score to a label. Pure function of the
// score: >= 0.05 positive, <= -0.05 negative, neutral otherwise.
func Classify(score float64) Label {
	switch {
	case score >= PositiveThreshold:
		return Positive
	case score <= NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// ClassifyText scores and classifies in one step.
func ClassifyText(text string, score Scorer) Label {
	return Classify(score(text))
}
