package config

import "github.com/urfave/cli/v3"

// Slack holds Slack API configuration
type Slack struct {
	Token   string
	Channel string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack Bot token (xoxb-...)",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("RELSCAN_SLACK_TOKEN", "SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "channel",
			Usage:       "Channel name to scan",
			Value:       "notification-development",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("RELSCAN_CHANNEL", "SLACK_CHANNEL"),
		},
	}
}
