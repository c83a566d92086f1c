package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/url-keywords/internal/extract"
	"github.com/dtnitsch/url-keywords/internal/questions"
	"github.com/dtnitsch/url-keywords/pkg/help"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "url-keywords",
		Usage:     "Extract the top keywords of web pages into a CSV report",
		ArgsUsage: "[url...]",
		Flags:     extract.Flags(),
		Action:    extract.ExtractAction,
		Commands: []*cli.Command{
			questions.Command(),
			{
				Name:  "coldstart",
				Usage: "Print a YAML quick-start guide",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
