package emotion

import (
	"context"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}']+`)

var defaultLexicon = map[string][]string{
	LabelAnger: {
		"angry", "anger", "mad", "furious", "annoyed", "annoying", "irritated", "hate",
		"hated", "rage", "outraged", "frustrated", "frustrating", "pissed", "livid",
		"ridiculous", "stupid", "unacceptable",
	},
	LabelJoy: {
		"happy", "glad", "great", "awesome", "excited", "exciting", "joy", "joyful",
		"delighted", "thrilled", "wonderful", "fantastic", "yay", "cheerful", "pleased",
		"amazing", "fun", "enjoy", "enjoyed", "thanks", "thank",
	},
	LabelSadness: {
		"sad", "unhappy", "depressed", "down", "lonely", "miserable", "upset", "cry",
		"crying", "heartbroken", "grief", "hopeless", "disappointed", "lost", "tired",
		"sorry", "hurt",
	},
	LabelFear: {
		"afraid", "scared", "fear", "terrified", "anxious", "anxiety", "worried", "worry",
		"nervous", "panic", "panicking", "frightened", "stressed", "dread", "overwhelmed",
	},
	LabelLove: {
		"love", "loved", "loving", "adore", "adored", "caring", "care", "sweet",
		"affection", "darling", "beloved", "romantic", "cherish", "fond",
	},
	LabelSurprise: {
		"surprised", "surprise", "surprising", "wow", "shocked", "shocking", "unexpected",
		"astonished", "amazed", "whoa", "unbelievable", "suddenly", "really",
	},
}

// LexiconClassifier scores text by counting words from a fixed per-label word list.
type LexiconClassifier struct {
	index map[string]string // word -> label
}

func NewLexiconClassifier() *LexiconClassifier {
	index := make(map[string]string)

	// iterate Labels, not the map, so a word listed twice resolves the same way every run
	for _, label := range Labels {
		for _, w := range defaultLexicon[label] {
			if _, ok := index[w]; !ok {
				index[w] = label
			}
		}
	}

	return &LexiconClassifier{index: index}
}

func (c *LexiconClassifier) Classify(ctx context.Context, text string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	total := 0

	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if label, ok := c.index[w]; ok {
			counts[label]++
			total++
		}
	}

	if total == 0 {
		return &Result{Label: LabelNeutral, Score: 0}, nil
	}

	best := ""
	for _, label := range Labels {
		if counts[label] > counts[best] {
			best = label
		}
	}

	return &Result{
		Label: best,
		Score: float64(counts[best]) / float64(total),
	}, nil
}
