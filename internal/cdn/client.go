// package cdn implements the HTTP client for the BeatSaver content delivery network.
//
// Song archives live at <base>/<url-encoded-lowercase-hash>.zip and are
// served anonymously. The client retries transient failures with exponential
// backoff; 404 and 410 are treated as permanent and never retried.
package cdn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cristiangauma/bsaver-dl/internal/shared"
)

// attemptResult classifies one download attempt. Together with the attempt
// counter this drives the retry loop: succeeded and permanent exit
// immediately, retryable loops until retries are exhausted.
type attemptResult int

const (
	attemptSucceeded attemptResult = iota
	attemptPermanent
	attemptRetryable
)

// Client fetches song archives from the CDN.
type Client struct {
	baseURL    string
	userAgent  string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a CDN client from configuration. The httpClient defaults
// to one with the configured per-request timeout; tests may inject their own.
func NewClient(cfg shared.CDNConfig, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay(),
		httpClient: httpClient,
		logger:     logger,
	}
}

// MapURL builds the archive URL for a song hash. The hash is lowercased and
// percent-encoded before being appended to the CDN base path.
func (c *Client) MapURL(hash string) string {
	return fmt.Sprintf("%s/%s.zip", c.baseURL, url.QueryEscape(strings.ToLower(hash)))
}

// Download fetches rawURL into dest, creating parent directories as needed.
//
// Transient failures (network errors, non-200 statuses other than 404/410)
// are retried up to MaxRetries additional attempts with exponential backoff:
// delay = retryDelay * 2^attempt. Backoff sleeps race against ctx so
// cancellation aborts immediately. A nil error guarantees the full body was
// written to dest; on failure the caller owns cleanup of any partial file.
func (c *Client) Download(ctx context.Context, rawURL, dest string) (int64, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		written, result, err := c.attempt(ctx, rawURL, dest)

		switch result {
		case attemptSucceeded:
			c.logger.Debug("downloaded", "url", rawURL, "dest", dest, "bytes", written)
			return written, nil
		case attemptPermanent:
			c.logger.Warn("resource gone", "url", rawURL, "err", err)
			return 0, err
		case attemptRetryable:
			lastErr = err
			c.logger.Warn("download attempt failed", "url", rawURL, "attempt", attempt+1, "err", err)
		}

		if attempt < c.maxRetries {
			delay := c.retryDelay * (1 << attempt)
			c.logger.Debug("backing off", "delay", delay, "attempt", attempt+1, "max", c.maxRetries)

			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return 0, fmt.Errorf("%w: %s: retries exhausted: %v", shared.ErrDownloadFailed, rawURL, lastErr)
}

// attempt performs a single GET and classifies the outcome.
func (c *Client) attempt(ctx context.Context, rawURL, dest string) (int64, attemptResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, attemptPermanent, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Connection", "keep-alive")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, attemptPermanent, ctx.Err()
		}
		return 0, attemptRetryable, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{URL: rawURL, Code: resp.StatusCode}
		if statusErr.Permanent() {
			return 0, attemptPermanent, statusErr
		}
		return 0, attemptRetryable, statusErr
	}

	written, err := c.write(resp.Body, dest)
	if err != nil {
		return 0, attemptRetryable, err
	}

	return written, attemptSucceeded, nil
}

// write streams the response body to dest.
func (c *Client) write(body io.Reader, dest string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, fmt.Errorf("failed to create destination directory: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}

	written, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return written, fmt.Errorf("failed to write destination file: %w", err)
	}

	return written, nil
}
