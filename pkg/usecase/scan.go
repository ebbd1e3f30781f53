package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relscan/pkg/domain/interfaces"
	"github.com/m-mizutani/relscan/pkg/domain/model"
)

type scanUseCase struct {
	source interfaces.MessageSource
}

// NewScan creates a new instance of the scan use case
func NewScan(source interfaces.MessageSource) *scanUseCase {
	return &scanUseCase{source: source}
}

// ScanReleases fetches the channel history for the window and reduces it to
// a deduplicated release list, most recent first. A history fetch failure
// aborts the whole run. Messages and attachments without a recognizable
// release pattern are skipped silently; they only show up in the aggregate
// counts.
func (uc *scanUseCase) ScanReleases(ctx context.Context, channel string, window time.Duration) ([]model.Release, error) {
	logger := ctxlog.From(ctx)

	oldest := time.Now().Add(-window)
	messages, err := uc.source.FetchMessages(ctx, channel, oldest)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch channel history", goerr.V("channel", channel))
	}

	logger.Info("Fetched channel history",
		"channel", channel,
		"window", window.String(),
		"messages", len(messages),
	)

	var records []model.Release
	for _, msg := range messages {
		if !IsReleaseNotification(msg) {
			continue
		}
		// one message may carry several attachments, each a candidate record
		for _, att := range msg.Attachments {
			if rec, ok := ExtractRelease(msg, att); ok {
				records = append(records, rec)
			}
		}
	}

	releases := Normalize(records)

	logger.Info("Extracted release notifications",
		"matched_records", len(records),
		"releases", len(releases),
	)

	return releases, nil
}
