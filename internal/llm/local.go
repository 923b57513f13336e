package llm

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

const (
	localModelName      = "local-extractive"
	localMaxSentences   = 2
	localNoContextReply = "I don't have enough information to answer that yet."
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+\s+`)

// LocalGenerator answers without a model: it returns the sentences of the
// request documents that share the most words with the query.
type LocalGenerator struct{}

func NewLocalGenerator() *LocalGenerator {
	return &LocalGenerator{}
}

func (g *LocalGenerator) Model() string {
	return localModelName
}

func (g *LocalGenerator) GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := req.Query
	if query == "" && len(req.Messages) > 0 {
		query = req.Messages[len(req.Messages)-1].Content
	}

	sentences := splitSentences(req.Documents)
	if len(sentences) == 0 {
		return &TextGenerationResponse{Text: localNoContextReply}, nil
	}

	queryTerms := map[string]bool{}
	for _, tok := range tokenize(query) {
		if len(tok) > 2 {
			queryTerms[tok] = true
		}
	}

	type scored struct {
		index int
		score int
	}

	ranked := make([]scored, 0, len(sentences))
	for i, s := range sentences {
		seen := map[string]bool{}
		score := 0

		for _, tok := range tokenize(s) {
			if queryTerms[tok] && !seen[tok] {
				seen[tok] = true
				score++
			}
		}

		ranked = append(ranked, scored{index: i, score: score})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	picked := make([]int, 0, localMaxSentences)
	for _, r := range ranked {
		if len(picked) == localMaxSentences || (r.score == 0 && len(picked) > 0) {
			break
		}

		picked = append(picked, r.index)
	}

	sort.Ints(picked)

	parts := make([]string, len(picked))
	for i, idx := range picked {
		parts[i] = sentences[idx]
	}

	text := strings.Join(parts, " ")

	return &TextGenerationResponse{
		Text: text,
		Usage: Usage{
			InputTokens:  len(tokenize(query)),
			OutputTokens: len(strings.Fields(text)),
		},
	}, nil
}

func splitSentences(docs []string) []string {
	var out []string

	for _, doc := range docs {
		for _, s := range sentenceBoundary.Split(doc, -1) {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}

	return out
}
