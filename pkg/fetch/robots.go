package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/temoto/robotstxt"
)

// RobotsGate fetches, parses and caches robots.txt per host and answers
// allow/deny queries. Any failure to obtain or parse robots.txt is treated
// as allow, matching the usual crawler convention.
type RobotsGate struct {
	client    *http.Client
	userAgent string
	cache     map[string]*robotstxt.RobotsData // hostname -> parsed data (nil on failure)
	cacheMu   sync.Mutex
	log       *logrus.Logger
}

// NewRobotsGate creates a RobotsGate using the shared HTTP client.
func NewRobotsGate(client *http.Client, userAgent string, log *logrus.Logger) *RobotsGate {
	return &RobotsGate{
		client:    client,
		userAgent: userAgent,
		cache:     make(map[string]*robotstxt.RobotsData),
		log:       log,
	}
}

// Allowed reports whether the target URL may be fetched for the configured
// user agent.
func (rg *RobotsGate) Allowed(ctx context.Context, target *url.URL) bool {
	data := rg.robotsData(ctx, target)
	if data == nil {
		return true
	}
	return data.TestAgent(target.RequestURI(), rg.userAgent)
}

func (rg *RobotsGate) robotsData(ctx context.Context, target *url.URL) *robotstxt.RobotsData {
	host := target.Hostname()

	rg.cacheMu.Lock()
	data, found := rg.cache[host]
	rg.cacheMu.Unlock()
	if found {
		return data
	}

	robotsURL := &url.URL{Scheme: target.Scheme, Host: target.Host, Path: "/robots.txt"}
	if robotsURL.Scheme != "http" && robotsURL.Scheme != "https" {
		robotsURL.Scheme = "https"
	}
	hostLog := rg.log.WithFields(logrus.Fields{"host": host, "robots_url": robotsURL.String()})
	hostLog.Debug("Fetching robots.txt...")

	data = rg.fetchAndParse(ctx, robotsURL.String(), hostLog)

	rg.cacheMu.Lock()
	rg.cache[host] = data // failures are cached as nil so we ask each host once
	rg.cacheMu.Unlock()
	return data
}

func (rg *RobotsGate) fetchAndParse(ctx context.Context, robotsURL string, hostLog *logrus.Entry) *robotstxt.RobotsData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		hostLog.Warnf("Error creating robots.txt request: %v", err)
		return nil
	}
	req.Header.Set("User-Agent", rg.userAgent)

	resp, err := rg.client.Do(req)
	if err != nil {
		hostLog.Debugf("Fetching robots.txt failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		hostLog.Warnf("Error reading robots.txt body: %v", err)
		return nil
	}

	data, err := robotstxt.FromBytes(bodyBytes)
	if err != nil {
		hostLog.Warnf("Error parsing robots.txt: %v", err)
		return nil
	}
	hostLog.Debug("Successfully fetched and parsed robots.txt")
	return data
}
