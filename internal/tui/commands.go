package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"codeberg.org/courseteen/server/internal/client"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	requestTimeout = 2 * time.Minute
	healthTimeout  = 5 * time.Second
)

const helpText = `**commands**

- ` + "`/url <address>`" + ` ingest a web page
- ` + "`/text <words>`" + ` ingest the given text
- ` + "`/pdf <path>`" + ` upload a local PDF
- ` + "`/query <question>`" + ` show the nearest chunks without answering
- ` + "`/stats`" + ` show how much is stored
- ` + "`/reset`" + ` empty the store
- ` + "`/clear`" + ` clear this conversation
- ` + "`/help`" + ` show this list

anything else is sent as a question.`

// splits "/name rest of line" into its command name and argument
func parseInput(input string) (name, arg string, isCommand bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", input, false
	}

	name, arg, _ = strings.Cut(input[1:], " ")

	return strings.ToLower(name), strings.TrimSpace(arg), true
}

// returns the request to run for a line typed into the chat
func dispatch(api *client.Client, input string) tea.Cmd {
	name, arg, isCommand := parseInput(input)
	if !isCommand {
		return askCmd(api, arg)
	}

	switch name {
	case "url":
		if arg == "" {
			return usage("/url <address>")
		}
		return ingestURLCmd(api, arg)

	case "text":
		if arg == "" {
			return usage("/text <words>")
		}
		return ingestTextCmd(api, arg)

	case "pdf":
		if arg == "" {
			return usage("/pdf <path>")
		}
		return ingestPDFCmd(api, arg)

	case "query":
		if arg == "" {
			return usage("/query <question>")
		}
		return queryCmd(api, arg)

	case "stats":
		return statsCmd(api)

	case "reset":
		return resetCmd(api)

	case "help":
		return func() tea.Msg {
			return CommandResultMsg{text: helpText}
		}

	default:
		return func() tea.Msg {
			return ChatErrorMsg{err: fmt.Errorf("unknown command /%s, try /help", name)}
		}
	}
}

func usage(form string) tea.Cmd {
	return func() tea.Msg {
		return ChatErrorMsg{err: fmt.Errorf("usage: %s", form)}
	}
}

// wraps fn with a request timeout and turns its error into a ChatErrorMsg
func request(fn func(ctx context.Context) (tea.Msg, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg, err := fn(ctx)
		if err != nil {
			return ChatErrorMsg{err: err}
		}

		return msg
	}
}

func askCmd(api *client.Client, query string) tea.Cmd {
	return request(func(ctx context.Context) (tea.Msg, error) {
		resp, err := api.Ask(ctx, query)
		if err != nil {
			return nil, err
		}

		return AskResultMsg{query: query, response: resp}, nil
	})
}

func ingestTextCmd(api *client.Client, text string) tea.Cmd {
	return request(func(ctx context.Context) (tea.Msg, error) {
		resp, err := api.IngestText(ctx, text)
		if err != nil {
			return nil, err
		}

		return CommandResultMsg{text: formatIngest("text", resp)}, nil
	})
}

func ingestURLCmd(api *client.Client, url string) tea.Cmd {
	return request(func(ctx context.Context) (tea.Msg, error) {
		resp, err := api.IngestURL(ctx, url)
		if err != nil {
			return nil, err
		}

		return CommandResultMsg{text: formatIngest(url, resp)}, nil
	})
}

func ingestPDFCmd(api *client.Client, path string) tea.Cmd {
	return request(func(ctx context.Context) (tea.Msg, error) {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open pdf: %w", err)
		}
		defer file.Close() //nolint:errcheck

		resp, err := api.IngestPDF(ctx, path, file)
		if err != nil {
			return nil, err
		}

		return CommandResultMsg{text: formatIngest(resp.Filename, resp)}, nil
	})
}

func queryCmd(api *client.Client, query string) tea.Cmd {
	return request(func(ctx context.Context) (tea.Msg, error) {
		resp, err := api.Query(ctx, query, 0)
		if err != nil {
			return nil, err
		}

		return CommandResultMsg{text: formatMatches(resp)}, nil
	})
}

func statsCmd(api *client.Client) tea.Cmd {
	return request(func(ctx context.Context) (tea.Msg, error) {
		stats, err := api.Stats(ctx)
		if err != nil {
			return nil, err
		}

		return CommandResultMsg{
			text: fmt.Sprintf("%d chunks stored, %d-dimensional embeddings", stats.Chunks, stats.Dimension),
		}, nil
	})
}

func resetCmd(api *client.Client) tea.Cmd {
	return request(func(ctx context.Context) (tea.Msg, error) {
		if err := api.Reset(ctx); err != nil {
			return nil, err
		}

		return CommandResultMsg{text: "store emptied"}, nil
	})
}

func formatIngest(source string, resp *client.IngestResponse) string {
	return fmt.Sprintf("ingested %s: %d chunks added, %d stored", source, resp.ChunksAdded, resp.ChunksStored)
}

func formatMatches(resp *client.QueryResponse) string {
	if resp.NoData {
		return "nothing ingested yet"
	}

	var b strings.Builder
	for i, m := range resp.Matches {
		fmt.Fprintf(&b, "%d. (distance %.3f) %s\n", i+1, m.Distance, m.Text)
	}

	return strings.TrimRight(b.String(), "\n")
}

// metadata line shown under an answer
func formatAnswerMetadata(resp *client.AskResponse) string {
	parts := []string{"mood: " + resp.Mood}

	if resp.Confidence > 0 {
		parts = append(parts, fmt.Sprintf("confidence: %.2f%%", resp.Confidence))
	}

	if len(resp.Context) > 0 {
		parts = append(parts, fmt.Sprintf("context: %d chunks", len(resp.Context)))
	}

	if resp.Model != "" {
		parts = append(parts, "model: "+resp.Model)
	}

	return strings.Join(parts, " | ")
}
