package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relscan/pkg/cli/config"
	"github.com/m-mizutani/relscan/pkg/domain/model"
	slackinfra "github.com/m-mizutani/relscan/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

// cmdInspect dumps raw channel messages. Useful when the notification
// integration changes its attachment format and extraction stops matching.
func cmdInspect() *cli.Command {
	var (
		slackCfg config.Slack
		scanCfg  config.Scan
	)

	flags := append(slackCfg.Flags(), scanCfg.Flags()...)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Dump raw channel messages for debugging notification formats",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := scanCfg.Validate(); err != nil {
				return err
			}

			source := slackinfra.NewClient(slackCfg.Token)
			oldest := time.Now().Add(-scanCfg.Window())
			messages, err := source.FetchMessages(ctx, slackCfg.Channel, oldest)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch channel history", goerr.V("channel", slackCfg.Channel))
			}

			dumpMessages(os.Stdout, messages)
			return nil
		},
	}
}

func dumpMessages(w io.Writer, messages []model.Message) {
	title := color.New(color.FgYellow, color.Bold)

	for i, msg := range messages {
		title.Fprintf(w, "--- Message %d ---\n", i+1)
		fmt.Fprintf(w, "Date: %s\n", msg.Timestamp.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Text: %q\n", msg.Text)

		for j, att := range msg.Attachments {
			fmt.Fprintf(w, "  Attachment %d:\n", j+1)
			fmt.Fprintf(w, "    Title:      %s\n", att.Title)
			fmt.Fprintf(w, "    Title Link: %s\n", att.TitleLink)
			fmt.Fprintf(w, "    Text:       %s\n", att.Text)
			fmt.Fprintf(w, "    Fallback:   %s\n", att.Fallback)
			fmt.Fprintf(w, "    Footer:     %s\n", att.Footer)
		}
		for j, text := range msg.BlockTexts {
			fmt.Fprintf(w, "  Block %d: %s\n", j+1, text)
		}
		fmt.Fprintln(w)
	}
}
