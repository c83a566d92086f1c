package extract

import (
	"fmt"
	"time"

	"github.com/dtnitsch/url-keywords/internal/common"
	"github.com/dtnitsch/url-keywords/pkg/harvest"
	"github.com/dtnitsch/url-keywords/pkg/report"
	"github.com/urfave/cli/v2"
)

// Flags are the extract flags. They live on the app so the default action
// and every subcommand share the run settings.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "file containing URLs to process, one per line"},
		&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Value: 5, Usage: "number of top keywords to extract per URL"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "keywords.csv", Usage: "path to save the output CSV file"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
		&cli.DurationFlag{Name: "delay", Value: 100 * time.Millisecond, Usage: "pause after each URL"},
		&cli.Float64Flag{Name: "rate", Usage: "requests per second; overrides --delay when > 0"},
		&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second, Usage: "per-request fetch timeout"},
		&cli.IntFlag{Name: "max-words", Value: 5, Usage: "maximum words kept per keyword"},
		&cli.StringFlag{Name: "mode", Value: "visible", Usage: "text extraction mode: visible or article"},
		&cli.StringFlag{Name: "log-file", Value: "keyword_extraction.log", Usage: "log file, truncated per run (- for stderr)"},
		&cli.StringFlag{Name: "dump", Usage: "write the last fetched page text to this file"},
		&cli.BoolFlag{Name: "respect-robots", Usage: "skip URLs disallowed by robots.txt"},
		&cli.BoolFlag{Name: "print", Usage: "print a summary table to stdout"},
	}
}

func ExtractAction(c *cli.Context) error {
	cfg, err := common.LoadRunConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger, closer, err := common.NewLogger(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer closer.Close()

	var urls []string
	if c.IsSet("file") {
		fileURLs, err := common.ReadURLFile(c.String("file"))
		if err != nil {
			logger.Error("Failed to read URL file", "path", c.String("file"), "error", err)
			return cli.Exit(err.Error(), 1)
		}
		urls = append(urls, fileURLs...)
	}
	urls = append(urls, c.Args().Slice()...)

	if len(urls) == 0 {
		logger.Error("No URLs provided")
		return cli.Exit("No URLs provided. Use --file or pass URLs as arguments.", 1)
	}

	valid := common.FilterValidURLs(logger, urls)
	if len(valid) == 0 {
		logger.Error("No valid URLs to process after validation", "input", len(urls))
		return cli.Exit("No valid URLs to process.", 1)
	}

	logger.Info("Starting keyword extraction", "urls", len(valid), "top_n", cfg.TopN, "mode", cfg.Fetch.Mode)

	h := harvest.New(cfg, logger)
	rows, err := h.ExtractURLs(c.Context, valid, cfg.TopN)
	if err != nil {
		logger.Error("Keyword extraction interrupted", "processed", len(rows), "error", err)
		return cli.Exit(fmt.Sprintf("Keyword extraction interrupted: %v", err), 1)
	}

	if err := report.WriteCSV(cfg.Output, cfg.TopN, rows); err != nil {
		logger.Error("Failed to save results", "path", cfg.Output, "error", err)
		return cli.Exit(err.Error(), 1)
	}
	logger.Info("Results successfully saved", "path", cfg.Output, "rows", len(rows))

	if c.Bool("print") {
		if err := report.RenderTable(c.App.Writer, cfg.TopN, rows); err != nil {
			logger.Warn("Failed to render summary table", "error", err)
		}
	}
	fmt.Fprintf(c.App.Writer, "Keywords extracted for %d URLs and saved to %s\n", len(rows), cfg.Output)
	return nil
}
