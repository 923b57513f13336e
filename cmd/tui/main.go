package main

import (
	"fmt"
	"os"

	"codeberg.org/courseteen/server/internal/client"
	"codeberg.org/courseteen/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	server := os.Getenv("CHATBOT_SERVER")
	if server == "" {
		server = "http://localhost:8000"
	}

	api := client.New(server, client.WithAdminKey(os.Getenv("ADMIN_API_KEY")))

	app := tui.NewApp(env, api)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running courseteen: %v\n", err)
		os.Exit(1)
	}
}
