package common

import (
	"fmt"

	"github.com/dtnitsch/url-keywords/models"
	"github.com/urfave/cli/v2"
)

// LoadRunConfig loads --config (if any) over the defaults, then applies the
// flags the user actually set.
func LoadRunConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("top") {
		cfg.TopN = c.Int("top")
	}
	if c.IsSet("max-words") {
		cfg.MaxWords = c.Int("max-words")
	}
	if c.IsSet("delay") {
		cfg.Delay = c.Duration("delay")
	}
	if c.IsSet("rate") {
		cfg.Rate = c.Float64("rate")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("dump") {
		cfg.DumpPath = c.String("dump")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if c.IsSet("timeout") {
		cfg.Fetch.Timeout = c.Duration("timeout")
	}
	if c.IsSet("mode") {
		mode, err := models.ParseTextMode(c.String("mode"))
		if err != nil {
			return nil, err
		}
		cfg.Fetch.Mode = mode
	}
	if c.IsSet("respect-robots") {
		cfg.Fetch.RespectRobots = c.Bool("respect-robots")
	}
	if c.IsSet("max-questions") {
		cfg.Questions.MaxQuestions = c.Int("max-questions")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
