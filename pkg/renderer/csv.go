package renderer

import (
	"encoding/csv"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relscan/pkg/domain/model"
)

var csvHeader = []string{"repository", "version", "release_time", "url"}

// CSV writes one row per release with a header row. The column set is
// fixed; notes are never included even when they were fetched.
func CSV(w io.Writer, releases []model.Release) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}
	for _, r := range releases {
		row := []string{
			r.Repository,
			r.Version,
			r.ReleasedAt.Format("2006-01-02T15:04:05"),
			r.URL,
		}
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write CSV row", goerr.V("repository", r.Repository))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV output")
	}
	return nil
}
