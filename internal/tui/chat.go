package tui

import (
	"strings"

	"codeberg.org/courseteen/server/internal/client"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	roleUser      = "user"
	roleAssistant = "assistant"
	roleSystem    = "system"
	roleError     = "error"

	// header, input box and status line
	chromeHeight = 7
)

// returns a new chat screen
func NewChat(api *client.Client) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "ask something, or /help for commands..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPurple)

	return &ChatModel{
		api:     api,
		input:   ti,
		spinner: sp,
		history: []ChatMessage{},
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.submit()

		case "ctrl+l":
			m.clear()
			return m, nil
		}

	case AskResultMsg:
		m.isFetching = false
		m.addMessage(ChatMessage{
			Role:     roleAssistant,
			Content:  msg.response.Answer,
			Metadata: formatAnswerMetadata(msg.response),
		})

		return m, nil

	case CommandResultMsg:
		m.isFetching = false
		m.addMessage(ChatMessage{Role: roleSystem, Content: msg.text})

		return m, nil

	case ChatErrorMsg:
		m.isFetching = false
		m.addMessage(ChatMessage{Role: roleError, Content: msg.err.Error()})

		return m, nil

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *ChatModel) submit() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	if value == "" || m.isFetching {
		return nil
	}

	m.input.SetValue("")

	if name, _, isCommand := parseInput(value); isCommand && name == "clear" {
		m.clear()
		return nil
	}

	m.addMessage(ChatMessage{Role: roleUser, Content: value})
	m.isFetching = true

	return tea.Batch(dispatch(m.api, value), m.spinner.Tick)
}

func (m *ChatModel) clear() {
	m.history = []ChatMessage{}
	m.isFetching = false
	m.input.SetValue("")
	m.refresh()
}

func (m *ChatModel) addMessage(msg ChatMessage) {
	m.history = append(m.history, msg)
	m.refresh()
}

func (m *ChatModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(10, width-10)

	vpHeight := max(3, height-chromeHeight)

	if !m.ready {
		m.viewport = viewport.New(width-4, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width - 4
		m.viewport.Height = vpHeight
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(20, width-8)),
	)
	if err == nil {
		m.renderer = renderer
	}

	m.refresh()
}

func (m *ChatModel) refresh() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

func (m *ChatModel) renderHistory() string {
	if len(m.history) == 0 {
		return infoStyle.Render("ready! ingest something with /url, /text or /pdf, then ask away.")
	}

	var b strings.Builder

	for _, msg := range m.history {
		switch msg.Role {
		case roleUser:
			b.WriteString(userStyle.Render("you: "))
			b.WriteString(msg.Content)
			b.WriteString("\n\n")

		case roleAssistant, roleSystem:
			b.WriteString(m.renderMarkdown(msg.Content))
			if msg.Metadata != "" {
				b.WriteString(infoStyle.Render(msg.Metadata))
				b.WriteString("\n")
			}
			b.WriteString("\n")

		case roleError:
			b.WriteString(errorStyle.Render("error: " + msg.Content))
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func (m *ChatModel) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content + "\n"
	}

	out, err := m.renderer.Render(content)
	if err != nil {
		return content + "\n"
	}

	return out
}

func (m *ChatModel) View() string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorWhite).
		Render("CHAT")

	help := lipgloss.NewStyle().
		Foreground(colorGray).
		Render("[Enter: Send] [Ctrl+L: Clear] [Ctrl+C: Back]")

	headerLine := lipgloss.JoinHorizontal(lipgloss.Left,
		header,
		strings.Repeat(" ", max(0, m.width-len("CHAT")-lipgloss.Width(help)-2)),
		help,
	)

	b.WriteString(headerLine)
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderHistory())
	}
	b.WriteString("\n")

	inputBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorGray).
		Width(max(10, m.width-4)).
		Padding(0, 1).
		Render(m.input.View())

	b.WriteString(inputBox)
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(infoStyle.Render(m.spinner.View() + " waiting for the server..."))
	}

	return b.String()
}
