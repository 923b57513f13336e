package agent

import (
	"fmt"
	"strings"
)

// assembles the completion prompt; the model continues after "Assistant:"
func buildPrompt(mood, context, query string) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("The user is feeling %s. Be empathetic.\n\n", mood))
	builder.WriteString("Use the context below to answer clearly:\n")
	builder.WriteString(fmt.Sprintf("Context: %s\n\n", context))
	builder.WriteString(fmt.Sprintf("User: %s\n", query))
	builder.WriteString("Assistant:")

	return builder.String()
}

// joins chunks with single spaces and cuts the result to at most maxChars runes
func joinContext(chunks []string, maxChars int) string {
	joined := strings.Join(chunks, " ")

	runes := []rune(joined)
	if len(runes) <= maxChars {
		return joined
	}

	return string(runes[:maxChars])
}

// completion models often echo the prompt; keep only what follows the last "Assistant:"
func extractAnswer(text string) string {
	if idx := strings.LastIndex(text, "Assistant:"); idx >= 0 {
		text = text[idx+len("Assistant:"):]
	}

	return strings.TrimSpace(text)
}
