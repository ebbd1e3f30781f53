package renderer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relscan/pkg/domain/interfaces"
	"github.com/m-mizutani/relscan/pkg/domain/model"
	"github.com/m-mizutani/relscan/pkg/domain/types"
)

// sectionLabel is the fixed heading under each date in the output document.
const sectionLabel = "リポジトリの更新リリース情報"

// Markdown renders releases grouped by the calendar date of their release
// time. When a notes fetcher is configured, each release is enriched with
// its note body; a fetch failure of any kind degrades that entry to a bare
// link line instead of aborting the render.
type Markdown struct {
	notes interfaces.ReleaseNotesFetcher
}

// NewMarkdown creates a Markdown renderer. notes may be nil, in which case
// every entry renders as a link line only.
func NewMarkdown(notes interfaces.ReleaseNotesFetcher) *Markdown {
	return &Markdown{notes: notes}
}

// Render writes the grouped document to w. Dates ascend; entries within a
// date keep the order of the input sequence.
func (r *Markdown) Render(ctx context.Context, w io.Writer, releases []model.Release) error {
	var lines []string
	for _, group := range groupByDate(releases) {
		lines = append(lines, fmt.Sprintf("- %s", formatDate(group.day)))
		lines = append(lines, fmt.Sprintf("  - %s", sectionLabel))
		for _, rel := range group.releases {
			rel = r.enrich(ctx, rel)
			lines = append(lines, fmt.Sprintf("    - [%s %s](%s) (%s)",
				rel.Repository, rel.Version, rel.URL, formatDate(rel.ReleasedAt)))
			if rel.Notes != nil {
				lines = append(lines, noteBullets(*rel.Notes)...)
			}
		}
	}
	if len(lines) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return goerr.Wrap(err, "failed to write Markdown output")
	}
	return nil
}

// enrich returns a copy of rel with Notes populated when fetching is
// enabled and the note body exists.
func (r *Markdown) enrich(ctx context.Context, rel model.Release) model.Release {
	if r.notes == nil {
		return rel
	}

	body, err := r.notes.FetchReleaseNotes(ctx, rel.Owner(), rel.Name(), rel.Tag())
	if err != nil {
		if !errors.Is(err, types.ErrReleaseNotFound) {
			ctxlog.From(ctx).Warn("Failed to fetch release notes",
				"repository", rel.Repository,
				"version", rel.Version,
				"error", err,
			)
		}
		return rel
	}

	rel.Notes = &body
	return rel
}

// noteBullets turns a release note body into nested bullet lines. Blank
// lines are dropped, headings are skipped, existing list markers are kept
// as-is, and every other line becomes its own bullet.
func noteBullets(body string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "#"):
		case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*"):
			lines = append(lines, "      "+line)
		default:
			lines = append(lines, "      - "+line)
		}
	}
	return lines
}

type dateGroup struct {
	day      time.Time
	releases []model.Release
}

// groupByDate buckets releases by calendar date, oldest date first.
func groupByDate(releases []model.Release) []dateGroup {
	index := map[string]int{}
	var groups []dateGroup
	for _, rel := range releases {
		key := formatDate(rel.ReleasedAt)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			y, m, d := rel.ReleasedAt.Date()
			groups = append(groups, dateGroup{day: time.Date(y, m, d, 0, 0, 0, 0, rel.ReleasedAt.Location())})
		}
		groups[i].releases = append(groups[i].releases, rel)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].day.Before(groups[j].day) })
	return groups
}

// formatDate renders a date as "2025.3.29" without zero padding.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Year(), int(t.Month()), t.Day())
}
