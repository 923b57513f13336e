package config

import (
	"flag"
	"os"
	"time"
)

const defaultServer = "http://localhost:8000"

// parses CLI flags for the text subcommand
func ParseTextFlags() Flags {
	fs := flag.NewFlagSet("text", flag.ExitOnError)
	flags := commonFlags(fs)
	path := fs.String("path", "./docs", "file or directory of .txt/.md files to ingest")
	fs.Parse(os.Args[2:]) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	flags.Path = *path

	return *flags
}

// parses CLI flags for the url subcommand
func ParseURLFlags() Flags {
	fs := flag.NewFlagSet("url", flag.ExitOnError)
	flags := commonFlags(fs)
	url := fs.String("url", "", "page to scrape and ingest")
	fs.Parse(os.Args[2:]) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	flags.URL = *url

	return *flags
}

// parses CLI flags for the pdf subcommand
func ParsePDFFlags() Flags {
	fs := flag.NewFlagSet("pdf", flag.ExitOnError)
	flags := commonFlags(fs)
	path := fs.String("path", "", "pdf file to upload")
	fs.Parse(os.Args[2:]) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	flags.Path = *path

	return *flags
}

// registers flags shared by every subcommand; values are filled once fs.Parse runs
func commonFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}

	server := os.Getenv("CHATBOT_SERVER")
	if server == "" {
		server = defaultServer
	}

	fs.StringVar(&f.Server, "server", server, "chatbot server base URL")
	fs.BoolVar(&f.Reset, "reset", false, "reset the store before ingesting")
	fs.DurationVar(&f.Timeout, "timeout", 2*time.Minute, "request timeout")

	return f
}
