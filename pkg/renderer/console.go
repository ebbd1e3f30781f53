package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/relscan/pkg/domain/model"
)

const (
	notePreviewLines = 5
	notePreviewChars = 200
)

// Console writes a numbered release list to w, most recent first. It is
// pure formatting over the given records; records with fetched notes get a
// short preview, everything else renders without one.
func Console(w io.Writer, releases []model.Release) {
	if len(releases) == 0 {
		fmt.Fprintln(w, "No release notifications found")
		return
	}

	separator := strings.Repeat("=", 80)
	header := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w, separator)
	header.Fprintf(w, "GitHub Releases (total: %d)\n", len(releases))
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w)

	for i, r := range releases {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.Repository)
		fmt.Fprintf(w, "   Version:  %s\n", r.Version)
		fmt.Fprintf(w, "   Released: %s\n", r.ReleasedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "   URL:      %s\n", r.URL)
		if r.Notes != nil {
			fmt.Fprintln(w, "   Notes:")
			for _, line := range notePreview(*r.Notes) {
				fmt.Fprintf(w, "     %s\n", line)
			}
		}
		fmt.Fprintln(w)
	}
}

// notePreview truncates a note body to its first lines for terminal output.
func notePreview(notes string) []string {
	lines := strings.Split(strings.TrimSpace(notes), "\n")
	truncated := len(lines) > notePreviewLines
	if truncated {
		lines = lines[:notePreviewLines]
	}

	preview := strings.Join(lines, "\n")
	if len(preview) > notePreviewChars {
		preview = preview[:notePreviewChars] + "..."
	} else if truncated {
		preview += "\n..."
	}
	return strings.Split(preview, "\n")
}
