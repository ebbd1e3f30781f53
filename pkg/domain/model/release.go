package model

import (
	"strings"
	"time"
)

// Release is one normalized GitHub release record extracted from a channel
// message. It is immutable after extraction, except that a renderer may
// populate Notes during Markdown generation.
type Release struct {
	Repository string    // owner/name
	Version    string    // tag string as it appeared in the source text
	ReleasedAt time.Time // best-known release time
	URL        string    // canonical release page URL
	Notes      *string   // nil until notes are fetched successfully
}

// ReleaseKey identifies a unique release for deduplication.
type ReleaseKey struct {
	Repository string
	Version    string
}

// Key returns the deduplication key of the record.
func (r Release) Key() ReleaseKey {
	return ReleaseKey{Repository: r.Repository, Version: r.Version}
}

// Owner returns the owner part of Repository.
func (r Release) Owner() string {
	owner, _, _ := strings.Cut(r.Repository, "/")
	return owner
}

// Name returns the repository name part of Repository.
func (r Release) Name() string {
	_, name, _ := strings.Cut(r.Repository, "/")
	return name
}

// Tag returns the release tag embedded in URL, which is the key the GitHub
// API expects. Query strings and fragments are stripped. Falls back to
// Version when the URL carries no tag segment.
func (r Release) Tag() string {
	const marker = "/releases/tag/"
	idx := strings.Index(r.URL, marker)
	if idx < 0 {
		return r.Version
	}
	tag := r.URL[idx+len(marker):]
	if i := strings.IndexAny(tag, "?#"); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" {
		return r.Version
	}
	return tag
}
