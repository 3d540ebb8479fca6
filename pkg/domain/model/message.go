package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
)

// Defaults used by NewMessage when no option overrides them. They only
// take effect if the webhook allows sender customization.
const (
	DefaultUsername  = "webhookbot"
	DefaultIconEmoji = ":grey_exclamation:"
)

// Message represents the JSON payload posted to an incoming webhook
type Message struct {
	Text        string       `json:"text"`
	Username    string       `json:"username"`
	IconEmoji   string       `json:"icon_emoji"`
	Channel     string       `json:"channel"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// MessageOption sets an optional message field
type MessageOption func(*Message)

// WithUsername overrides the sender name shown in the channel
func WithUsername(name string) MessageOption {
	return func(m *Message) {
		m.Username = name
	}
}

// WithIconEmoji overrides the sender icon, in ":emoji:" format
func WithIconEmoji(emoji string) MessageOption {
	return func(m *Message) {
		m.IconEmoji = emoji
	}
}

// WithAttachments appends attachments to the message. Order is preserved
// both here and on the wire.
func WithAttachments(attachments ...Attachment) MessageOption {
	return func(m *Message) {
		m.Attachments = append(m.Attachments, attachments...)
	}
}

// NewMessage builds a webhook message for the given channel
func NewMessage(text, channel string, opts ...MessageOption) (*Message, error) {
	msg := &Message{
		Text:      text,
		Username:  DefaultUsername,
		IconEmoji: DefaultIconEmoji,
		Channel:   channel,
	}

	for _, opt := range opts {
		opt(msg)
	}

	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}

// Validate checks the message invariants. It also covers messages built
// as struct literals, so the webhook client calls it before every post.
func (m *Message) Validate() error {
	if m.Text == "" {
		return domain.ErrInvalidArgument.Wrap(goerr.New("message text is required"))
	}
	if m.Channel == "" {
		return domain.ErrInvalidArgument.Wrap(goerr.New("message channel is required"))
	}

	for i := range m.Attachments {
		if err := m.Attachments[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Payload serializes the message for transmission. HTML escaping is
// disabled because the webhook expects markup such as "<url|text>" to
// arrive literally, and the default encoder would rewrite the angle
// brackets to unicode escape sequences.
func (m *Message) Payload() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, goerr.Wrap(err, "failed to marshal webhook payload")
	}

	// Encode appends a newline the form body must not carry
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
