// Package models defines data structures for configuration and results.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DesktopUserAgent is sent with every page fetch.
const DesktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/58.0.3029.110 Safari/537.3"

// Config holds runtime configuration for a keyword run.
// Values come from DefaultConfig, an optional YAML file, then CLI flags.
type Config struct {
	TopN     int           `yaml:"top_n"`
	MaxWords int           `yaml:"max_words"`
	Delay    time.Duration `yaml:"delay"`
	Rate     float64       `yaml:"rate"` // requests per second; overrides Delay when > 0
	Output   string        `yaml:"output"`
	LogFile  string        `yaml:"log_file"`
	DumpPath string        `yaml:"dump_path"`
	Verbose  bool          `yaml:"verbose"`

	Fetch     FetchConfig     `yaml:"fetch"`
	Questions QuestionsConfig `yaml:"questions"`
}

// FetchConfig controls how pages are retrieved and reduced to text.
type FetchConfig struct {
	Timeout          time.Duration `yaml:"timeout"`
	UserAgent        string        `yaml:"user_agent"`
	MinContentLength int           `yaml:"min_content_length"`
	Mode             TextMode      `yaml:"mode"`
	RespectRobots    bool          `yaml:"respect_robots"`
}

// QuestionsConfig configures the related-question lookup service.
type QuestionsConfig struct {
	APIKey       string        `yaml:"api_key"`
	Endpoint     string        `yaml:"endpoint"`
	MaxQuestions int           `yaml:"max_questions"`
	Timeout      time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		TopN:     5,
		MaxWords: 5,
		Delay:    100 * time.Millisecond,
		Output:   "keywords.csv",
		LogFile:  "keyword_extraction.log",
		Fetch: FetchConfig{
			Timeout:          10 * time.Second,
			UserAgent:        DesktopUserAgent,
			MinContentLength: 100,
			Mode:             TextModeVisible,
		},
		Questions: QuestionsConfig{
			Endpoint:     "https://serpapi.com/search.json",
			MaxQuestions: 10,
			Timeout:      10 * time.Second,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged. SERPAPI_API_KEY fills the question service key when the
// file leaves it blank.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	if cfg.Questions.APIKey == "" {
		cfg.Questions.APIKey = os.Getenv("SERPAPI_API_KEY")
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.TopN < 1 {
		errs = append(errs, fmt.Errorf("top_n must be positive, got %d", c.TopN))
	}
	if c.MaxWords < 1 {
		errs = append(errs, fmt.Errorf("max_words must be positive, got %d", c.MaxWords))
	}
	if c.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative, got %s", c.Delay))
	}
	if c.Rate < 0 {
		errs = append(errs, fmt.Errorf("rate must not be negative, got %g", c.Rate))
	}
	if c.Fetch.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("fetch.timeout must be positive, got %s", c.Fetch.Timeout))
	}
	if _, err := ParseTextMode(string(c.Fetch.Mode)); err != nil {
		errs = append(errs, err)
	}
	if c.Questions.MaxQuestions < 1 {
		errs = append(errs, fmt.Errorf("questions.max_questions must be positive, got %d", c.Questions.MaxQuestions))
	}
	return errors.Join(errs...)
}
