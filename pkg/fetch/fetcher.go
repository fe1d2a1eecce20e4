package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/encoding/charmap"

	"bip-scraper/pkg/utils"
)

// Fetcher performs single-attempt page fetches under a global concurrency
// cap and a per-domain rate limit. BIP crawls skip failed pages instead of
// retrying them, so any error here means the page is simply dropped.
type Fetcher struct {
	client      *http.Client
	rateLimiter *RateLimiter
	globalSem   *semaphore.Weighted
	robots      *RobotsGate // nil when robots.txt is ignored
	log         *logrus.Logger
}

// NewFetcher creates a Fetcher. Pass a nil robots gate to disable robots.txt
// checks.
func NewFetcher(client *http.Client, rateLimiter *RateLimiter, maxConcurrent int, robots *RobotsGate, log *logrus.Logger) *Fetcher {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Fetcher{
		client:      client,
		rateLimiter: rateLimiter,
		globalSem:   semaphore.NewWeighted(int64(maxConcurrent)),
		robots:      robots,
		log:         log,
	}
}

// FetchPage downloads a single page and returns its body as UTF-8 text.
// Non-200 responses and network errors yield an error; the caller decides
// whether that sinks the whole source or just this page.
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid URL %q: %w", utils.ErrParsing, pageURL, err)
	}
	domain := parsed.Hostname()
	pageLog := f.log.WithField("url", pageURL)

	if err := f.globalSem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("%w: %w", utils.ErrSemaphoreTimeout, err)
	}
	defer f.globalSem.Release(1)

	if f.robots != nil && !f.robots.Allowed(ctx, parsed) {
		pageLog.Debug("Skipping URL disallowed by robots.txt")
		return "", utils.ErrRobotsDisallowed
	}

	if err := f.rateLimiter.Wait(ctx, domain); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", utils.ErrRequestCreation, err)
	}
	setBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		pageLog.Warnf("Fetch failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		pageLog.WithField("status_code", resp.StatusCode).Warn("Non-200 response, skipping page")
		io.Copy(io.Discard, resp.Body)
		switch {
		case resp.StatusCode >= 500:
			return "", fmt.Errorf("%w: status %d %s", utils.ErrServerHTTPError, resp.StatusCode, resp.Status)
		case resp.StatusCode >= 400:
			return "", fmt.Errorf("%w: status %d %s", utils.ErrClientHTTPError, resp.StatusCode, resp.Status)
		default:
			return "", fmt.Errorf("%w: status %d %s", utils.ErrOtherHTTPError, resp.StatusCode, resp.Status)
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", utils.ErrResponseBodyRead, err)
	}

	text, err := decodeBody(bodyBytes)
	if err != nil {
		return "", err
	}
	pageLog.WithField("bytes", len(bodyBytes)).Debug("Successfully fetched")
	return text, nil
}

// decodeBody converts a response body to UTF-8. Older BIP sites still serve
// ISO-8859-2 or Windows-1250 without declaring it, so the cascade is: accept
// valid UTF-8 as-is, then try ISO-8859-2, then Windows-1250.
func decodeBody(body []byte) (string, error) {
	if utf8.Valid(body) {
		return string(body), nil
	}
	if decoded, err := charmap.ISO8859_2.NewDecoder().Bytes(body); err == nil {
		return string(decoded), nil
	}
	decoded, err := charmap.Windows1250.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", utils.ErrDecoding, err)
	}
	return string(decoded), nil
}
