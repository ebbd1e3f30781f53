package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrChannelNotFound is returned when the channel name cannot be
	// resolved with the given token.
	ErrChannelNotFound = goerr.New("channel not found")

	// ErrReleaseNotFound is returned when no release exists for a tag, or
	// the release has an empty body. Callers treat it as "no notes
	// available" for the record, never as a fatal failure.
	ErrReleaseNotFound = goerr.New("release notes not found")
)
