package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultMinChars  = 100
	defaultUserAgent = "Mozilla/5.0 (compatible; courseteen-bot/1.0)"
	maxBodyBytes     = 10 << 20
)

var (
	ErrInvalidURL   = errors.New("invalid url")
	ErrFetch        = errors.New("failed to fetch page")
	ErrPageTooShort = errors.New("empty or blocked page")
)

type Config struct {
	MinChars  int
	UserAgent string
	Timeout   time.Duration
}

// Scraper downloads a page and returns its visible text. Script-rendered
// content is not executed.
type Scraper struct {
	config     Config
	httpClient *http.Client
}

func New(config Config) *Scraper {
	if config.MinChars <= 0 {
		config.MinChars = defaultMinChars
	}

	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}

	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}

	return &Scraper{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// fetches rawURL and extracts its readable text
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (string, error) {
	target, err := validateURL(rawURL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	req.Header.Set("User-Agent", s.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}

	text, err := ExtractText(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}

	if len([]rune(text)) < s.config.MinChars {
		return "", fmt.Errorf("%w: only %d characters of text", ErrPageTooShort, len([]rune(text)))
	}

	return text, nil
}

func validateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("%w: url is empty", ErrInvalidURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}

	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return u.String(), nil
}
