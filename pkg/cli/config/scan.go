package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Scan holds scan pipeline configuration
type Scan struct {
	Days         int64
	FetchNotes   bool
	CSVPath      string
	MarkdownPath string
}

// Flags returns CLI flags for scan configuration
func (c *Scan) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "days",
			Usage:       "How many days of history to scan",
			Value:       7,
			Destination: &c.Days,
			Sources:     cli.EnvVars("RELSCAN_SCAN_DAYS", "SCAN_DAYS"),
		},
		&cli.BoolFlag{
			Name:        "fetch-notes",
			Usage:       "Fetch release note bodies for Markdown output",
			Value:       false,
			Destination: &c.FetchNotes,
			Sources:     cli.EnvVars("RELSCAN_FETCH_NOTES", "FETCH_NOTES"),
		},
		&cli.StringFlag{
			Name:        "output-csv",
			Usage:       "Write releases as CSV to this path",
			Destination: &c.CSVPath,
			Sources:     cli.EnvVars("RELSCAN_OUTPUT_CSV", "OUTPUT_CSV"),
		},
		&cli.StringFlag{
			Name:        "output-md",
			Usage:       "Write releases as grouped Markdown to this path",
			Destination: &c.MarkdownPath,
			Sources:     cli.EnvVars("RELSCAN_OUTPUT_MD", "OUTPUT_MD"),
		},
	}
}

// Validate checks the configuration before any network I/O happens.
func (c *Scan) Validate() error {
	if c.Days < 1 {
		return goerr.New("scan window must be at least one day", goerr.V("days", c.Days))
	}
	if c.CSVPath != "" && c.CSVPath == c.MarkdownPath {
		return goerr.New("CSV and Markdown outputs must be different files", goerr.V("path", c.CSVPath))
	}
	return nil
}

// Window returns the scan window as a duration.
func (c *Scan) Window() time.Duration {
	return time.Duration(c.Days) * 24 * time.Hour
}
