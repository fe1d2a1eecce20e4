package config

import (
	"fmt"
	"time"
)

// Validate checks AppConfig fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *AppConfig) Validate() (warnings []string, err error) {
	// SourcesFile
	if c.SourcesFile == "" {
		warnings = append(warnings, "sources_file is empty, defaulting to './sources_full.json'")
		c.SourcesFile = "./sources_full.json"
	}

	// KnownPathsFile (optional: empty means every source uses discovery mode)
	// left as-is.

	// MaxConcurrent
	if c.MaxConcurrent <= 0 {
		warnings = append(warnings, "max_concurrent should be > 0, defaulting to 15")
		c.MaxConcurrent = 15
	}

	// RequestsPerSecond
	if c.RequestsPerSecond <= 0 {
		warnings = append(warnings, "requests_per_second should be > 0, defaulting to 3.0")
		c.RequestsPerSecond = 3.0
	}

	// FetchTimeout
	if c.FetchTimeout < 0 {
		warnings = append(warnings, "fetch_timeout cannot be negative, defaulting to 30s")
		c.FetchTimeout = 0
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 30 * time.Second
	}

	// Discovery limits
	if c.MaxDiscoveryLinks <= 0 {
		c.MaxDiscoveryLinks = 15
	}
	if c.MaxCommonPaths <= 0 {
		c.MaxCommonPaths = 5
	}
	if c.KnownPathPageCap <= 0 {
		c.KnownPathPageCap = 3
	}
	if c.DiscoveryPageCap <= 0 {
		c.DiscoveryPageCap = 2
	}

	// Verification
	if c.Verify.BatchSize <= 0 {
		c.Verify.BatchSize = 20
	}
	if c.Verify.BatchSize > 20 {
		warnings = append(warnings, fmt.Sprintf(
			"verify.batch_size %d exceeds the downstream request limit, capping at 20", c.Verify.BatchSize))
		c.Verify.BatchSize = 20
	}
	if c.Verify.MinConfidence <= 0 {
		c.Verify.MinConfidence = 0.3
	}
	if c.Verify.Model == "" {
		c.Verify.Model = "claude-3-5-haiku-latest"
	}
	if c.Verify.MaxTokens <= 0 {
		c.Verify.MaxTokens = 2000
	}

	// HTTP client defaults
	if c.HTTPClientSettings.Timeout <= 0 {
		c.HTTPClientSettings.Timeout = c.FetchTimeout
	}
	if c.HTTPClientSettings.MaxIdleConns <= 0 {
		c.HTTPClientSettings.MaxIdleConns = 100
	}
	if c.HTTPClientSettings.MaxIdleConnsPerHost <= 0 {
		c.HTTPClientSettings.MaxIdleConnsPerHost = 3
	}
	if c.HTTPClientSettings.IdleConnTimeout <= 0 {
		c.HTTPClientSettings.IdleConnTimeout = 90 * time.Second
	}
	if c.HTTPClientSettings.TLSHandshakeTimeout <= 0 {
		c.HTTPClientSettings.TLSHandshakeTimeout = 10 * time.Second
	}
	if c.HTTPClientSettings.ExpectContinueTimeout <= 0 {
		c.HTTPClientSettings.ExpectContinueTimeout = 1 * time.Second
	}
	if c.HTTPClientSettings.DialerTimeout <= 0 {
		c.HTTPClientSettings.DialerTimeout = 15 * time.Second
	}
	if c.HTTPClientSettings.DialerKeepAlive <= 0 {
		c.HTTPClientSettings.DialerKeepAlive = 30 * time.Second
	}

	return warnings, nil
}
