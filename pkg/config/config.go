package config

import "time"

// AppConfig holds the global application configuration
type AppConfig struct {
	SourcesFile       string        `yaml:"sources_file"`
	KnownPathsFile    string        `yaml:"known_paths_file"`
	StateDir          string        `yaml:"state_dir,omitempty"` // empty disables the cross-run seen store
	MaxConcurrent     int           `yaml:"max_concurrent"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	FetchTimeout      time.Duration `yaml:"fetch_timeout,omitempty"`
	RespectRobots     bool          `yaml:"respect_robots,omitempty"`
	StrictDates       *bool         `yaml:"strict_dates,omitempty"` // nil means strict

	// Discovery limits
	MaxDiscoveryLinks int `yaml:"max_discovery_links,omitempty"`
	MaxCommonPaths    int `yaml:"max_common_paths,omitempty"`
	KnownPathPageCap  int `yaml:"known_path_page_cap,omitempty"`
	DiscoveryPageCap  int `yaml:"discovery_page_cap,omitempty"`

	// Secondary verification
	Verify VerifyConfig `yaml:"verify,omitempty"`

	HTTPClientSettings HTTPClientConfig `yaml:"http_client_settings,omitempty"`
}

// VerifyConfig holds settings for the optional LLM verification pass
type VerifyConfig struct {
	Enabled       bool    `yaml:"enabled,omitempty"`
	Model         string  `yaml:"model,omitempty"`
	BatchSize     int     `yaml:"batch_size,omitempty"`
	MinConfidence float64 `yaml:"min_confidence,omitempty"`
	MaxTokens     int     `yaml:"max_tokens,omitempty"`
}

// HTTPClientConfig holds settings for the shared HTTP client
type HTTPClientConfig struct {
	Timeout               time.Duration `yaml:"timeout,omitempty"`
	MaxIdleConns          int           `yaml:"max_idle_conns,omitempty"`
	MaxIdleConnsPerHost   int           `yaml:"max_idle_conns_per_host,omitempty"`
	IdleConnTimeout       time.Duration `yaml:"idle_conn_timeout,omitempty"`
	TLSHandshakeTimeout   time.Duration `yaml:"tls_handshake_timeout,omitempty"`
	ExpectContinueTimeout time.Duration `yaml:"expect_continue_timeout,omitempty"`
	DialerTimeout         time.Duration `yaml:"dialer_timeout,omitempty"`
	DialerKeepAlive       time.Duration `yaml:"dialer_keep_alive,omitempty"`
}

// StrictDateFiltering reports whether undated records should be rejected.
func (c *AppConfig) StrictDateFiltering() bool {
	if c.StrictDates == nil {
		return true
	}
	return *c.StrictDates
}
