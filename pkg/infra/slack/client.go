package slack

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relscan/pkg/domain/interfaces"
	"github.com/m-mizutani/relscan/pkg/domain/model"
	"github.com/m-mizutani/relscan/pkg/domain/types"
	"github.com/slack-go/slack"
)

const (
	historyPageLimit = 1000
	listPageLimit    = 200
)

type client struct {
	api *slack.Client
}

// NewClient creates a message source backed by the Slack Web API.
func NewClient(token string) interfaces.MessageSource {
	return &client{api: slack.New(token)}
}

// FetchMessages returns every message posted to the named channel since
// oldest, following history pagination until exhausted.
func (c *client) FetchMessages(ctx context.Context, channel string, oldest time.Time) ([]model.Message, error) {
	channelID, err := c.resolveChannelID(ctx, channel)
	if err != nil {
		return nil, err
	}

	params := &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Oldest:    strconv.FormatInt(oldest.Unix(), 10),
		Limit:     historyPageLimit,
	}

	var messages []model.Message
	for {
		resp, err := c.api.GetConversationHistoryContext(ctx, params)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch conversation history",
				goerr.V("channel", channel), goerr.V("channel_id", channelID))
		}
		for _, msg := range resp.Messages {
			messages = append(messages, convertMessage(msg))
		}
		if !resp.HasMore {
			break
		}
		params.Cursor = resp.ResponseMetaData.NextCursor
	}
	return messages, nil
}

// resolveChannelID looks up the channel ID by name over the paginated
// conversation list. Public and private channels are both searched.
func (c *client) resolveChannelID(ctx context.Context, name string) (string, error) {
	params := &slack.GetConversationsParameters{
		Types: []string{"public_channel", "private_channel"},
		Limit: listPageLimit,
	}
	for {
		channels, cursor, err := c.api.GetConversationsContext(ctx, params)
		if err != nil {
			return "", goerr.Wrap(err, "failed to list conversations")
		}
		for _, ch := range channels {
			if ch.Name == name {
				return ch.ID, nil
			}
		}
		if cursor == "" {
			return "", goerr.Wrap(types.ErrChannelNotFound, "channel is not visible to this token",
				goerr.V("channel", name))
		}
		params.Cursor = cursor
	}
}

func convertMessage(msg slack.Message) model.Message {
	converted := model.Message{
		Text:      msg.Text,
		Timestamp: parseTimestamp(msg.Timestamp),
	}
	for _, att := range msg.Attachments {
		converted.Attachments = append(converted.Attachments, model.Attachment{
			Fallback:  att.Fallback,
			Title:     att.Title,
			TitleLink: att.TitleLink,
			Text:      att.Text,
			Footer:    att.Footer,
		})
	}
	for _, block := range msg.Blocks.BlockSet {
		if section, ok := block.(*slack.SectionBlock); ok && section.Text != nil {
			converted.BlockTexts = append(converted.BlockTexts, section.Text.Text)
		}
	}
	return converted
}

// parseTimestamp converts Slack's "seconds.fraction" message timestamp.
// Slack uses microsecond precision for the fraction.
func parseTimestamp(ts string) time.Time {
	sec, frac, _ := strings.Cut(ts, ".")
	seconds, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return time.Time{}
	}
	var nanos int64
	if len(frac) == 6 {
		if micro, err := strconv.ParseInt(frac, 10, 64); err == nil {
			nanos = micro * int64(time.Microsecond)
		}
	}
	return time.Unix(seconds, nanos)
}
