package domain

import "time"

// DefaultBaseURL is the page host used when neither the config file nor TLDR_BASE_URL set one.
const DefaultBaseURL = "https://raw.githubusercontent.com/tldr-pages/tldr/main"

// Source describes where pages are fetched from.
type Source struct {
	// BaseURL is the host and path prefix under which the pages/ tree lives, without a trailing slash.
	BaseURL string
	// Timeout bounds a single fetch attempt. Zero leaves it to the transport defaults.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
}

// Config is the user configuration after defaults and environment overrides are applied.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Platform Platform
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
	}
}

// Source returns the page source described by the config.
func (c *Config) Source(userAgent string) Source {
	return Source{
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		UserAgent: userAgent,
	}
}
