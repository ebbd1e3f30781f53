package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relscan/pkg/domain/model"
	"github.com/m-mizutani/relscan/pkg/usecase"
)

func TestExtractRelease_URLRoundTrip(t *testing.T) {
	msg := model.Message{Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	att := model.Attachment{
		Fallback: "New release: https://github.com/o/r/releases/tag/v1.2.3",
	}

	rec, ok := usecase.ExtractRelease(msg, att)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, rec.Repository).Equal("o/r")
	gt.Value(t, rec.Version).Equal("v1.2.3")
	gt.Value(t, rec.URL).Equal("https://github.com/o/r/releases/tag/v1.2.3")
}

func TestExtractRelease_CompactFormSynthesizesURL(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	msg := model.Message{Timestamp: ts}
	att := model.Attachment{
		Fallback: "New release published",
		Text:     "acme/widget v2.0.0",
	}

	rec, ok := usecase.ExtractRelease(msg, att)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, rec.Repository).Equal("acme/widget")
	gt.Value(t, rec.Version).Equal("v2.0.0")
	gt.Value(t, rec.URL).Equal("https://github.com/acme/widget/releases/tag/v2.0.0")
	gt.Value(t, rec.ReleasedAt).Equal(ts)
}

func TestExtractRelease_AnnouncementForm(t *testing.T) {
	msg := model.Message{Timestamp: time.Now()}
	att := model.Attachment{
		Fallback: "New release v3.1.0 of acme/gadget is out",
	}

	rec, ok := usecase.ExtractRelease(msg, att)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, rec.Repository).Equal("acme/gadget")
	gt.Value(t, rec.Version).Equal("v3.1.0")
}

func TestExtractRelease_PrepositionalForm(t *testing.T) {
	msg := model.Message{Timestamp: time.Now()}
	att := model.Attachment{
		Fallback: "New release published in acme/widget: 1.4.0 is now available",
	}

	rec, ok := usecase.ExtractRelease(msg, att)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, rec.Repository).Equal("acme/widget")
	gt.Value(t, rec.Version).Equal("1.4.0")
}

func TestExtractRelease_URLWinsOnRepositoryConflict(t *testing.T) {
	msg := model.Message{Timestamp: time.Now()}
	att := model.Attachment{
		Fallback:  "acme/widget v1.0.0",
		TitleLink: "https://github.com/acme/gadget/releases/tag/v1.0.0|release",
	}

	rec, ok := usecase.ExtractRelease(msg, att)
	gt.Value(t, ok).Equal(true)
	// URL-derived repository wins, text-derived version is kept
	gt.Value(t, rec.Repository).Equal("acme/gadget")
	gt.Value(t, rec.Version).Equal("v1.0.0")
	gt.Value(t, rec.URL).Equal("https://github.com/acme/gadget/releases/tag/v1.0.0")
}

func TestExtractRelease_FieldPriority(t *testing.T) {
	// Fallback is consulted before text; the text URL is still picked up
	// for the record URL.
	msg := model.Message{Timestamp: time.Now()}
	att := model.Attachment{
		Fallback: "acme/widget v1.0.0",
		Text:     "see https://github.com/acme/widget/releases/tag/v1.0.0",
	}

	rec, ok := usecase.ExtractRelease(msg, att)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, rec.Repository).Equal("acme/widget")
	gt.Value(t, rec.URL).Equal("https://github.com/acme/widget/releases/tag/v1.0.0")
}

func TestExtractRelease_BlockTextsAsLastResort(t *testing.T) {
	msg := model.Message{
		Timestamp:  time.Now(),
		BlockTexts: []string{"New release v5.0.0 of acme/blocky"},
	}
	att := model.Attachment{Fallback: "New release"}

	rec, ok := usecase.ExtractRelease(msg, att)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, rec.Repository).Equal("acme/blocky")
	gt.Value(t, rec.Version).Equal("v5.0.0")
}

func TestExtractRelease_NoMatch(t *testing.T) {
	msg := model.Message{Timestamp: time.Now()}

	tests := []struct {
		name string
		att  model.Attachment
	}{
		{name: "empty attachment", att: model.Attachment{}},
		{name: "marker only", att: model.Attachment{Fallback: "New release"}},
		{name: "version without repository", att: model.Attachment{Fallback: "New release v9.9.9"}},
		{name: "repository without version", att: model.Attachment{Fallback: "New release published in acme/widget"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := usecase.ExtractRelease(msg, tt.att)
			gt.Value(t, ok).Equal(false)
		})
	}
}

func TestExtractRelease_FooterTimestamp(t *testing.T) {
	msgTS := time.Date(2025, 3, 30, 12, 0, 0, 0, time.Local)
	msg := model.Message{Timestamp: msgTS}
	att := model.Attachment{
		Fallback: "acme/widget v1.0.0",
		Footer:   "Posted at 2025-03-29 18:30:00",
	}

	rec, ok := usecase.ExtractRelease(msg, att)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, rec.ReleasedAt).Equal(time.Date(2025, 3, 29, 18, 30, 0, 0, time.Local))
}

func TestExtractRelease_UnparseableFooterFallsBack(t *testing.T) {
	msgTS := time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC)
	msg := model.Message{Timestamp: msgTS}
	att := model.Attachment{
		Fallback: "acme/widget v1.0.0",
		Footer:   "GitHub Actions",
	}

	rec, ok := usecase.ExtractRelease(msg, att)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, rec.ReleasedAt).Equal(msgTS)
}
