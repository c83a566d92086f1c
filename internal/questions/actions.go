package questions

import (
	"fmt"

	"github.com/dtnitsch/url-keywords/internal/common"
	"github.com/dtnitsch/url-keywords/pkg/harvest"
	"github.com/dtnitsch/url-keywords/pkg/questions"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "questions",
		Usage:     "Collect related questions for a URL's keywords combined with a central phrase",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "central", Required: true, Usage: "central keyword or phrase combined with every page keyword"},
			&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Value: 5, Usage: "number of page keywords to query"},
			&cli.IntFlag{Name: "max-questions", Value: 10, Usage: "maximum questions per query"},
		},
		Action: QuestionsAction,
	}
}

func QuestionsAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Exactly one URL is required.", 1)
	}

	cfg, err := common.LoadRunConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if cfg.Questions.APIKey == "" {
		return cli.Exit("No question service key: set SERPAPI_API_KEY or questions.api_key.", 1)
	}

	logger, closer, err := common.NewLogger(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer closer.Close()

	collector := &questions.Collector{
		Keywords:     harvest.New(cfg, logger),
		Service:      questions.NewSerpAPIClient(cfg.Questions),
		Logger:       logger,
		TopN:         cfg.TopN,
		MaxQuestions: cfg.Questions.MaxQuestions,
	}

	set, err := collector.Collect(c.Context, c.String("central"), c.Args().First())
	if err != nil {
		logger.Error("Failed to collect related questions", "url", c.Args().First(), "error", err)
		return cli.Exit(err.Error(), 1)
	}

	for _, q := range set.Sorted() {
		fmt.Fprintln(c.App.Writer, q)
	}
	return nil
}
