package tui

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/courseteen/server/internal/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// returns a new welcome screen
func NewWelcome(mode string, api *client.Client) *Welcome {
	commands := []Command{
		{Name: "chat", Description: "talk to the chatbot", Available: true},
		{Name: "health", Description: "check the server connection", Available: true},
		{Name: "reset", Description: "empty the server's store", Available: mode == "development"},
		{Name: "quit", Description: "exit", Available: true},
	}

	return &Welcome{
		mode:     mode,
		api:      api,
		commands: commands,
	}
}

func (m *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			cmd := m.executeCommand()
			m.input = ""

			return m, cmd
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}

	case ServerStatusMsg:
		m.status = msg.status
		return m, nil
	}

	return m, nil
}

func (m *Welcome) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("answers from your documents, in a tone that fits your mood"))
	b.WriteString("\n\n")

	modeText := fmt.Sprintf("mode: %s | server: %s", strings.ToUpper(m.mode), m.api.BaseURL())
	b.WriteString(infoStyle.Render(modeText))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		if !cmd.Available {
			continue
		}
		line := fmt.Sprintf("  %s %s",
			commandStyle.Render(cmd.Name),
			commandDescStyle.Render("- "+cmd.Description),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	prompt := promptStyle.Render("> ")
	input := inputStyle.Render(m.input + "_")
	b.WriteString(prompt + input)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(infoStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("type a command and press enter. press ctrl+c to quit."))

	return b.String()
}

func (m *Welcome) executeCommand() tea.Cmd {
	cmd := strings.TrimSpace(m.input)

	switch cmd {
	case "quit":
		return tea.Quit

	case "chat":
		return func() tea.Msg {
			return EnterChatMsg{}
		}

	case "health":
		return checkServer(m.api)

	case "reset":
		if m.mode != "development" {
			return func() tea.Msg {
				return ErrorMsg{err: fmt.Errorf("reset not available in production mode")}
			}
		}

		return func() tea.Msg {
			msg := resetCmd(m.api)()
			if errMsg, ok := msg.(ChatErrorMsg); ok {
				return ErrorMsg{err: errMsg.err}
			}

			return ServerStatusMsg{status: msg.(CommandResultMsg).text}
		}

	default:
		if cmd != "" {
			return func() tea.Msg {
				return ErrorMsg{err: fmt.Errorf("unknown command: %s", cmd)}
			}
		}
		return nil
	}
}

func checkServer(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
		defer cancel()

		if err := api.Health(ctx); err != nil {
			return ServerStatusMsg{status: fmt.Sprintf("server unreachable: %v", err)}
		}

		stats, err := api.Stats(ctx)
		if err != nil {
			return ServerStatusMsg{status: "server is up"}
		}

		return ServerStatusMsg{status: fmt.Sprintf("server is up: %d chunks stored", stats.Chunks)}
	}
}
