package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relscan/pkg/domain/model"
	"github.com/m-mizutani/relscan/pkg/usecase"
)

// MockMessageSource is a mock implementation of MessageSource
type MockMessageSource struct {
	fetchMessagesFunc func(ctx context.Context, channel string, oldest time.Time) ([]model.Message, error)
	fetchCalls        []string
}

func (m *MockMessageSource) FetchMessages(ctx context.Context, channel string, oldest time.Time) ([]model.Message, error) {
	m.fetchCalls = append(m.fetchCalls, channel)
	if m.fetchMessagesFunc != nil {
		return m.fetchMessagesFunc(ctx, channel, oldest)
	}
	return nil, errors.New("mock not configured")
}

func TestScanReleases_Pipeline(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	messages := []model.Message{
		// two near-duplicate announcements for the same release
		{
			Timestamp: ts,
			Attachments: []model.Attachment{
				{Fallback: "New release published", Text: "acme/widget v2.0.0"},
			},
		},
		{
			Timestamp: ts.Add(5 * time.Minute),
			Attachments: []model.Attachment{
				{Fallback: "New release published", Text: "acme/widget v2.0.0"},
			},
		},
		// not a notification
		{
			Timestamp: ts,
			Text:      "deploy finished",
		},
		// notification whose attachment has no extractable pattern
		{
			Timestamp: ts,
			Attachments: []model.Attachment{
				{Fallback: "New release"},
			},
		},
		// a second repository
		{
			Timestamp: ts.Add(time.Hour),
			Attachments: []model.Attachment{
				{Fallback: "New release: https://github.com/acme/gadget/releases/tag/v1.0.0"},
			},
		},
	}

	source := &MockMessageSource{
		fetchMessagesFunc: func(ctx context.Context, channel string, oldest time.Time) ([]model.Message, error) {
			return messages, nil
		},
	}

	uc := usecase.NewScan(source)
	releases, err := uc.ScanReleases(ctx, "notification-development", 7*24*time.Hour)

	gt.NoError(t, err)
	gt.Value(t, len(releases)).Equal(2)

	// most recent first
	gt.Value(t, releases[0].Repository).Equal("acme/gadget")
	gt.Value(t, releases[1].Repository).Equal("acme/widget")
	// duplicate collapsed to the first announcement
	gt.Value(t, releases[1].ReleasedAt).Equal(ts)

	gt.Value(t, len(source.fetchCalls)).Equal(1)
	gt.Value(t, source.fetchCalls[0]).Equal("notification-development")
}

func TestScanReleases_FetchFailureIsFatal(t *testing.T) {
	ctx := context.Background()

	source := &MockMessageSource{
		fetchMessagesFunc: func(ctx context.Context, channel string, oldest time.Time) ([]model.Message, error) {
			return nil, errors.New("transport error")
		},
	}

	uc := usecase.NewScan(source)
	_, err := uc.ScanReleases(ctx, "notification-development", 24*time.Hour)
	gt.Error(t, err)
}

func TestScanReleases_MultiAttachmentMessage(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	source := &MockMessageSource{
		fetchMessagesFunc: func(ctx context.Context, channel string, oldest time.Time) ([]model.Message, error) {
			return []model.Message{
				{
					Timestamp: ts,
					Attachments: []model.Attachment{
						{Fallback: "New release v1.0.0 of acme/widget"},
						{Fallback: "New release v2.0.0 of acme/gadget"},
					},
				},
			}, nil
		},
	}

	uc := usecase.NewScan(source)
	releases, err := uc.ScanReleases(ctx, "releases", 24*time.Hour)

	gt.NoError(t, err)
	gt.Value(t, len(releases)).Equal(2)
}
