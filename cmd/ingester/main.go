package main

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/courseteen/server/internal/client"
	"codeberg.org/courseteen/server/internal/config"
	"codeberg.org/courseteen/server/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ingester <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  text  - ingest .txt/.md files from a file or directory")
		fmt.Println("  url   - scrape a web page and ingest its text")
		fmt.Println("  pdf   - upload a PDF document")
		fmt.Println("\nOptions:")
		fmt.Println("  --server <url>      - chatbot server (default $CHATBOT_SERVER or http://localhost:8000)")
		fmt.Println("  --path <path>       - file or directory to ingest (text, pdf)")
		fmt.Println("  --url <url>         - page to ingest (url)")
		fmt.Println("  --reset             - empty the store before ingesting")
		fmt.Println("  --timeout <dur>     - per-request timeout")
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	var flags config.Flags

	switch command {
	case "text":
		flags = config.ParseTextFlags()
	case "url":
		flags = config.ParseURLFlags()
	case "pdf":
		flags = config.ParsePDFFlags()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}

	ctx := context.Background()
	api := client.New(flags.Server,
		client.WithTimeout(flags.Timeout),
		client.WithAdminKey(cfg.AdminKey),
	)

	if err := api.Health(ctx); err != nil {
		logger.Fatal("server is not reachable", "server", api.BaseURL(), "error", err)
	}

	if flags.Reset {
		if err := api.Reset(ctx); err != nil {
			logger.Fatal("failed to reset store", "error", err)
		}

		logger.Info("store reset")
	}

	switch command {
	case "text":
		err = IngestText(ctx, api, flags)
	case "url":
		err = IngestURL(ctx, api, flags)
	case "pdf":
		err = IngestPDF(ctx, api, flags)
	}

	if err != nil {
		logger.Fatal("ingestion failed", "command", command, "error", err)
	}
}
