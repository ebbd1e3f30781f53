package interfaces

import (
	"context"
	"time"

	"github.com/m-mizutani/relscan/pkg/domain/model"
)

// MessageSource defines operations for reading channel history
type MessageSource interface {
	// FetchMessages returns all messages posted to the named channel since
	// oldest. Any failure is fatal for the run; no partial message sets are
	// returned.
	FetchMessages(ctx context.Context, channel string, oldest time.Time) ([]model.Message, error)
}
