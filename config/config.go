// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/AnomalyFi/token-logos/archiver"
	"github.com/AnomalyFi/token-logos/consts"
)

const (
	defaultMaxConcurrency = 16
	defaultRequestTimeout = 2 * time.Minute
	defaultLogLevel       = zapcore.InfoLevel
)

var (
	ErrInvalidCDNBaseURL = errors.New("invalid cdn base url")
	ErrMissingCLDPath    = errors.New("missing cld path")
)

type Config struct {
	// CDN
	CDNBaseURL     string        `json:"cdnBaseURL"`
	CLDPath        string        `json:"cldPath"`
	MaxConcurrency int           `json:"maxConcurrency"` // <= 0 is unbounded
	RequestTimeout time.Duration `json:"requestTimeout"`

	// Misc
	LogLevel    zapcore.Level `json:"logLevel"`
	MetricsFile string        `json:"metricsFile"`

	// Archiver
	ArchiverConfig archiver.ORMArchiverConfig `json:"archiverConfig"`

	loaded bool
}

// New decodes b over the defaults. Callers run Verify after applying any
// overrides.
func New(b []byte) (*Config, error) {
	c := &Config{}
	c.setDefault()
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
		c.loaded = true
	}
	return c, nil
}

// Load reads the config at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if len(path) == 0 {
		return New(nil)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(b)
}

func (c *Config) setDefault() {
	c.CDNBaseURL = consts.DefaultCDNBaseURL
	c.CLDPath = consts.DefaultCLDPath
	c.MaxConcurrency = defaultMaxConcurrency
	c.RequestTimeout = defaultRequestTimeout
	c.LogLevel = defaultLogLevel
}

func (c *Config) Verify() error {
	u, err := url.Parse(c.CDNBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || len(u.Host) == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidCDNBaseURL, c.CDNBaseURL)
	}
	if len(c.CLDPath) == 0 {
		return ErrMissingCLDPath
	}
	return nil
}

func (c *Config) GetLogLevel() zapcore.Level       { return c.LogLevel }
func (c *Config) GetMaxConcurrency() int           { return c.MaxConcurrency }
func (c *Config) GetRequestTimeout() time.Duration { return c.RequestTimeout }
func (c *Config) Loaded() bool                     { return c.loaded }
