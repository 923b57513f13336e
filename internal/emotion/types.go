package emotion

import "context"

const (
	LabelAnger    = "anger"
	LabelJoy      = "joy"
	LabelSadness  = "sadness"
	LabelFear     = "fear"
	LabelLove     = "love"
	LabelSurprise = "surprise"
	LabelNeutral  = "neutral"
)

// every label a classifier may return besides LabelNeutral
var Labels = []string{LabelAnger, LabelJoy, LabelSadness, LabelFear, LabelLove, LabelSurprise}

// detects the dominant emotion of a piece of text
type Classifier interface {
	Classify(ctx context.Context, text string) (*Result, error)
}

type Result struct {
	Label string  `json:"label"` // lowercase
	Score float64 `json:"score"` // 0..1
}

// score as a percentage rounded to two decimals
func (r *Result) Confidence() float64 {
	return roundTo(r.Score*100, 2)
}
