package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the scrape and serve commands.
// Values come from an optional YAML file; explicitly set flags win.
type Config struct {
	Timeout       time.Duration   `yaml:"timeout"`
	ScrapeTimeout time.Duration   `yaml:"scrape_timeout"`
	UserAgent     string          `yaml:"user_agent"`
	RetryDelays   []time.Duration `yaml:"retry_delays"`
	Concurrency   int             `yaml:"concurrency"`
	RateLimit     float64         `yaml:"rate_limit"`
	OutputDir     string          `yaml:"output_dir"`
	DB            string          `yaml:"db"`
	Listen        string          `yaml:"listen"`
}

// Defaults applied to unset fields.
const (
	DefaultTimeout       = 30 * time.Second
	DefaultScrapeTimeout = 30 * time.Second
	DefaultConcurrency   = 4
	DefaultRateLimit     = 1.0
	DefaultListen        = ":8080"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.ScrapeTimeout <= 0 {
		c.ScrapeTimeout = DefaultScrapeTimeout
	}
	// An explicit empty list in the file disables retries.
	if c.RetryDelays == nil {
		c.RetryDelays = []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	// Zero means unset; a negative rate disables limiting.
	if c.RateLimit == 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
}
