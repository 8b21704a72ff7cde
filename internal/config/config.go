// Package config holds the tunables of a profile analysis run.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/naka-gawa/github-profile-stats/internal/domain"
)

// Defaults used by the CLI.
const (
	DefaultPageSize       = 100
	DefaultRequestTimeout = 10 * time.Second
	DefaultTopStarsLimit  = 7
)

// Config holds the tunables of one run.
type Config struct {
	// BaseURL overrides the REST API root. Empty means api.github.com.
	BaseURL            string
	PageSize           int
	RequestTimeout     time.Duration
	StaleThresholdDays int
	TopStarsLimit      int
}

// Default returns the configuration used by the CLI.
func Default() Config {
	return Config{
		PageSize:           DefaultPageSize,
		RequestTimeout:     DefaultRequestTimeout,
		StaleThresholdDays: domain.StaleThresholdDays,
		TopStarsLimit:      DefaultTopStarsLimit,
	}
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.PageSize <= 0 || c.PageSize > 100 {
		return fmt.Errorf("page size must be between 1 and 100, got %d", c.PageSize)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.StaleThresholdDays < 0 {
		return fmt.Errorf("stale threshold must not be negative, got %d", c.StaleThresholdDays)
	}
	if c.TopStarsLimit <= 0 {
		return fmt.Errorf("top stars limit must be positive, got %d", c.TopStarsLimit)
	}
	if c.BaseURL != "" {
		if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
			return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
		}
	}
	return nil
}
