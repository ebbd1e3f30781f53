package interfaces

import "context"

// ReleaseNotesFetcher defines operations for fetching release note bodies
// from the code host
type ReleaseNotesFetcher interface {
	// FetchReleaseNotes returns the release body for owner/repo at tag.
	// Returns types.ErrReleaseNotFound when the release or its body does
	// not exist.
	FetchReleaseNotes(ctx context.Context, owner, repo, tag string) (string, error)
}
