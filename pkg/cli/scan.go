package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relscan/pkg/cli/config"
	"github.com/m-mizutani/relscan/pkg/domain/interfaces"
	"github.com/m-mizutani/relscan/pkg/domain/model"
	githubinfra "github.com/m-mizutani/relscan/pkg/infra/github"
	slackinfra "github.com/m-mizutani/relscan/pkg/infra/slack"
	"github.com/m-mizutani/relscan/pkg/renderer"
	"github.com/m-mizutani/relscan/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdScan() *cli.Command {
	var (
		slackCfg  config.Slack
		githubCfg config.GitHub
		scanCfg   config.Scan
	)

	flags := append(slackCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, scanCfg.Flags()...)

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"s"},
		Usage:   "Scan channel history and report GitHub releases",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := scanCfg.Validate(); err != nil {
				return err
			}

			source := slackinfra.NewClient(slackCfg.Token)
			uc := usecase.NewScan(source)

			releases, err := uc.ScanReleases(ctx, slackCfg.Channel, scanCfg.Window())
			if err != nil {
				return goerr.Wrap(err, "failed to scan releases")
			}

			// Note fetching only affects Markdown output; console and CSV
			// render the records as-is.
			var notes interfaces.ReleaseNotesFetcher
			if scanCfg.FetchNotes {
				notes = githubinfra.NewClient(githubCfg.Token)
			}

			renderer.Console(os.Stdout, releases)

			if scanCfg.CSVPath != "" {
				if err := writeCSV(scanCfg.CSVPath, releases); err != nil {
					return err
				}
				logger.Info("Wrote CSV output", "path", scanCfg.CSVPath)
			}
			if scanCfg.MarkdownPath != "" {
				if err := writeMarkdown(ctx, notes, scanCfg.MarkdownPath, releases); err != nil {
					return err
				}
				logger.Info("Wrote Markdown output", "path", scanCfg.MarkdownPath)
			}

			return nil
		},
	}
}

func writeCSV(path string, releases []model.Release) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create CSV file", goerr.V("path", path))
	}
	defer f.Close()

	return renderer.CSV(f, releases)
}

func writeMarkdown(ctx context.Context, notes interfaces.ReleaseNotesFetcher, path string, releases []model.Release) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create Markdown file", goerr.V("path", path))
	}
	defer f.Close()

	return renderer.NewMarkdown(notes).Render(ctx, f, releases)
}
