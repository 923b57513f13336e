package tui

import (
	"codeberg.org/courseteen/server/internal/client"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateChat
)

// main TUI application model
type Model struct {
	state   AppState
	mode    string
	width   int
	height  int
	err     error
	welcome *Welcome
	chat    *ChatModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the chat state
type EnterChatMsg struct{}

// represents a line in the conversation
type ChatMessage struct {
	Role     string
	Content  string
	Metadata string
}

// chat screen
type ChatModel struct {
	api        *client.Client
	input      textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	renderer   *glamour.TermRenderer
	history    []ChatMessage
	width      int
	height     int
	isFetching bool
	ready      bool
}

// sent when an /ask request completes
type AskResultMsg struct {
	query    string
	response *client.AskResponse
}

// sent when a slash command completes
type CommandResultMsg struct {
	text string
}

// sent when a request fails
type ChatErrorMsg struct {
	err error
}

// welcome screen model
type Welcome struct {
	mode     string
	input    string
	status   string
	api      *client.Client
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
	Available   bool
}

// sent after a health check from the welcome screen
type ServerStatusMsg struct {
	status string
}
