package usecase

import (
	"strings"

	"github.com/m-mizutani/relscan/pkg/domain/model"
)

const (
	fallbackMarker  = "New release"
	publishedMarker = "New release published"
)

// IsReleaseNotification reports whether msg is a GitHub release
// notification. GitHub's Slack integration always places the marker in the
// attachment fallback; the secondary check on the text fields tolerates
// integration variants that leave the fallback empty. A message without
// attachments is never a notification, regardless of its top-level text.
func IsReleaseNotification(msg model.Message) bool {
	for _, att := range msg.Attachments {
		if strings.Contains(att.Fallback, fallbackMarker) {
			return true
		}
		if strings.Contains(att.Title, publishedMarker) || strings.Contains(att.Text, publishedMarker) {
			return true
		}
	}
	return false
}
