package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
)

// FetchKind classifies why a fetch produced no content
type FetchKind int

const (
	FetchNetwork FetchKind = iota
	FetchTimeout
	FetchHTTPStatus
	FetchUnsupportedContentType
	FetchInvalidURL
)

// FetchError is the non-fatal failure a fetch can produce. Callers treat any
// fetch error as "skip this page and continue", never as a reason to abort
// the surrounding crawl or fan-out.
type FetchError struct {
	Kind       FetchKind
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchTimeout:
		return fmt.Sprintf("fetch timed out: %s", e.URL)
	case FetchHTTPStatus:
		return fmt.Sprintf("fetch returned HTTP %d: %s", e.StatusCode, e.URL)
	case FetchUnsupportedContentType:
		return fmt.Sprintf("fetch returned non-HTML content: %s", e.URL)
	case FetchInvalidURL:
		return fmt.Sprintf("invalid fetch URL: %s", e.URL)
	default:
		return fmt.Sprintf("fetch failed: %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves pages with browser-like headers, a hard timeout, an
// HTML-only content-type gate, and a per-domain politeness delay.
type Fetcher struct {
	config Config
	logger arbor.ILogger
	client *http.Client

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewFetcher creates a page fetcher from the pipeline configuration
func NewFetcher(config Config, logger arbor.ILogger) *Fetcher {
	return &Fetcher{
		config: config,
		logger: logger,
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		limiters: make(map[string]*rate.Limiter),
	}
}

// FetchPage performs a GET and returns the HTML body. Every failure is
// returned as a *FetchError so callers can classify without aborting.
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) (string, error) {
	if !IsValidURL(pageURL) {
		return "", &FetchError{Kind: FetchInvalidURL, URL: pageURL}
	}

	if err := f.waitForDomain(ctx, pageURL); err != nil {
		return "", &FetchError{Kind: FetchTimeout, URL: pageURL, Err: err}
	}

	reqCtx, cancel := context.WithTimeout(ctx, f.config.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &FetchError{Kind: FetchInvalidURL, URL: pageURL, Err: err}
	}

	// Upstream sites commonly reject requests without browser headers
	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		kind := FetchNetwork
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			kind = FetchTimeout
		}
		f.logger.Debug().Err(err).Str("url", pageURL).Msg("Fetch failed")
		return "", &FetchError{Kind: kind, URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.logger.Debug().Int("status", resp.StatusCode).Str("url", pageURL).Msg("Fetch returned non-success status")
		return "", &FetchError{Kind: FetchHTTPStatus, URL: pageURL, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTMLContentType(contentType) {
		// Discard the body unparsed; binary payloads are never interesting here
		return "", &FetchError{Kind: FetchUnsupportedContentType, URL: pageURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		kind := FetchNetwork
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			kind = FetchTimeout
		}
		return "", &FetchError{Kind: kind, URL: pageURL, Err: err}
	}

	return string(body), nil
}

// waitForDomain applies the per-domain politeness delay
func (f *Fetcher) waitForDomain(ctx context.Context, pageURL string) error {
	if f.config.RequestDelay <= 0 {
		return nil
	}

	host := hostOf(pageURL)
	if host == "" {
		return nil
	}

	f.mu.Lock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(f.config.RequestDelay), 1)
		f.limiters[host] = limiter
	}
	f.mu.Unlock()

	return limiter.Wait(ctx)
}

func isHTMLContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml+xml")
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
