package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/tagforge/tagforge/internal/codegen"
	"github.com/tagforge/tagforge/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "tagforge",
		Usage:   "Build-time generator for markup combinator packages: one element module and one attribute module per HTML/XHTML dialect.",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("TAGFORGE_LOG_LEVEL"),
				Value:   "warn",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate all dialect modules into the output directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "output directory the dialect trees are written under",
						Value: "gen",
					},
					&cli.StringFlag{
						Name:  "import-path",
						Usage: "rendering-library import path embedded in generated files",
						Value: codegen.DefaultImportPath,
					},
					&cli.IntFlag{
						Name:  "jobs",
						Usage: "number of dialects to generate concurrently",
						Value: 1,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					ctrl.Flags.OutputDir = c.String("out")
					ctrl.Flags.ImportPath = c.String("import-path")
					ctrl.Flags.Jobs = int(c.Int("jobs"))
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "check",
				Usage: "Validate the dialect catalog without writing files",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Check(ctx)
				},
			},
			{
				Name:  "list",
				Usage: "List the cataloged dialects",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.List(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run tagforge")
	}
}
