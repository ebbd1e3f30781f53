package model

import "time"

// Message is one unit of Slack channel history, converted from the wire
// representation by the infra layer. It is read-only input to
// classification and extraction.
type Message struct {
	Text        string
	Timestamp   time.Time // message send time, fallback release time
	Attachments []Attachment
	BlockTexts  []string // section block texts, consulted after attachment fields
}

// Attachment is a structured sub-payload of a channel message. An empty
// string maps a field that was absent on the wire, following slack-go's
// representation of omitted JSON fields.
type Attachment struct {
	Fallback  string // plain-text summary, primary classification signal
	Title     string
	TitleLink string
	Text      string
	Footer    string
}
