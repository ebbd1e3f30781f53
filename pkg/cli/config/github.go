package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub API configuration
type GitHub struct {
	Token string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for release note fetching (optional, raises rate limits)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("RELSCAN_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
	}
}
