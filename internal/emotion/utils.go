package emotion

import (
	"math"
	"strings"
)

const defaultEmoji = "🙂"

var emojis = map[string]string{
	LabelAnger:    "😠",
	LabelJoy:      "😄",
	LabelSadness:  "😢",
	LabelFear:     "😨",
	LabelLove:     "❤️",
	LabelSurprise: "😲",
}

// returns the emoji shown next to answers for label
func Emoji(label string) string {
	if e, ok := emojis[strings.ToLower(label)]; ok {
		return e
	}

	return defaultEmoji
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
