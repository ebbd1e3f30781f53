package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/relscan/pkg/domain/model"
)

// match is the result of one matcher applied to one text field. url is
// only set when the pattern itself carries the release URL.
type match struct {
	repository string
	version    string
	url        string
}

// matcher extracts a repository/version pair from a single text field.
// A nil result means the pattern does not apply to the field.
type matcher func(text string) *match

var (
	releaseURLRe = regexp.MustCompile(`https://github\.com/([\w-]+/[\w.-]+)/releases/tag/([\w.%+-]+)`)
	announceRe   = regexp.MustCompile(`New release (\S+) of ([\w-]+/[\w.-]+)`)
	compactRe    = regexp.MustCompile(`([\w-]+/[\w.-]+)\s+(v?\d+\.\d+\.\d+(?:[.-][A-Za-z0-9]+)?)\b`)
	repoRe       = regexp.MustCompile(`(?:in|for)\s+([\w-]+/[\w.-]+)`)
	versionRe    = regexp.MustCompile(`\bv?\d+\.\d+\.\d+(?:[.-][A-Za-z0-9]+)?\b`)
)

// matchers are tried in order against each text field; the first hit wins.
// The URL form goes first since it is the least ambiguous.
var matchers = []matcher{
	matchReleaseURL,
	matchAnnouncement,
	matchCompact,
	matchPrepositional,
}

func matchReleaseURL(text string) *match {
	m := releaseURLRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &match{repository: m[1], version: m[2], url: m[0]}
}

// matchAnnouncement handles the "New release v1.2.3 of owner/repo" wording.
func matchAnnouncement(text string) *match {
	m := announceRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &match{repository: m[2], version: m[1]}
}

// matchCompact handles the bare "owner/repo v1.2.3" description form.
func matchCompact(text string) *match {
	m := compactRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &match{repository: m[1], version: m[2]}
}

// matchPrepositional handles wordings where the repository appears after
// "in"/"for" and the version stands elsewhere in the same sentence.
func matchPrepositional(text string) *match {
	repo := repoRe.FindStringSubmatch(text)
	if repo == nil {
		return nil
	}
	version := versionRe.FindString(text)
	if version == "" {
		return nil
	}
	return &match{repository: repo[1], version: version}
}

// ExtractRelease parses one classified attachment into a release record.
// The boolean is false when no pattern matches any text field; the
// attachment is then skipped, which is the only failure signal. A partial
// hit (repository without version, or vice versa) counts as no match.
func ExtractRelease(msg model.Message, att model.Attachment) (model.Release, bool) {
	fields := candidateFields(msg, att)

	var found *match
	for _, field := range fields {
		for _, m := range matchers {
			if r := m(field); r != nil {
				found = r
				break
			}
		}
		if found != nil {
			break
		}
	}
	if found == nil {
		return model.Release{}, false
	}

	url := found.url
	if url == "" {
		url = findReleaseURL(fields, att.TitleLink)
	}
	if url == "" {
		url = fmt.Sprintf("https://github.com/%s/releases/tag/%s", found.repository, found.version)
	}

	repository := found.repository
	// URLs are structurally unambiguous; on disagreement the URL-derived
	// repository wins while the text-derived version string is kept.
	if m := releaseURLRe.FindStringSubmatch(url); m != nil && m[1] != repository {
		repository = m[1]
	}

	return model.Release{
		Repository: repository,
		Version:    found.version,
		ReleasedAt: releaseTime(msg, att),
		URL:        url,
	}, true
}

// candidateFields returns the text fields to match against, in priority
// order: fallback, title, text, then the message's section block texts.
func candidateFields(msg model.Message, att model.Attachment) []string {
	fields := make([]string, 0, 3+len(msg.BlockTexts))
	for _, f := range []string{att.Fallback, att.Title, att.Text} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return append(fields, msg.BlockTexts...)
}

// findReleaseURL scans the candidate fields and then the title link for a
// release page URL. Slack wraps links as <url|label>, so the title link is
// cut at the first pipe or closing bracket before matching.
func findReleaseURL(fields []string, titleLink string) string {
	for _, f := range fields {
		if u := releaseURLRe.FindString(f); u != "" {
			return u
		}
	}
	link := titleLink
	if i := strings.IndexAny(link, "|>"); i >= 0 {
		link = link[:i]
	}
	return releaseURLRe.FindString(strings.TrimSpace(link))
}

var footerTimeRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}(?::\d{2})?`)

var footerTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// releaseTime prefers a timestamp embedded in the attachment footer and
// falls back to the message timestamp. Footer parsing is best effort; an
// unparseable footer is never an error.
func releaseTime(msg model.Message, att model.Attachment) time.Time {
	if token := footerTimeRe.FindString(att.Footer); token != "" {
		for _, layout := range footerTimeLayouts {
			if ts, err := time.ParseInLocation(layout, token, time.Local); err == nil {
				return ts
			}
		}
	}
	return msg.Timestamp
}
