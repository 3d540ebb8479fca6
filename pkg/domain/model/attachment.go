package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
)

// Color is the accent color of an attachment
type Color string

const (
	ColorGood    Color = "good"
	ColorWarning Color = "warning"
	ColorDanger  Color = "danger"
)

// Validate checks that the color is one of the values the webhook accepts
func (c Color) Validate() error {
	switch c {
	case ColorGood, ColorWarning, ColorDanger:
		return nil
	default:
		return domain.ErrInvalidArgument.Wrap(goerr.New("color must be good, warning or danger: got " + string(c)))
	}
}

// Attachment represents a styled block appended to a webhook message
type Attachment struct {
	Fallback  string  `json:"fallback"`
	Title     string  `json:"title"`
	Text      string  `json:"text"`
	Color     Color   `json:"color"`
	TitleLink string  `json:"title_link,omitempty"`
	Pretext   string  `json:"pretext,omitempty"`
	Fields    []Field `json:"fields,omitempty"`
}

// Field is a short titled value rendered inside an attachment
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// AttachmentOption sets an optional attachment field
type AttachmentOption func(*Attachment)

// WithTitleLink turns the attachment title into a link
func WithTitleLink(url string) AttachmentOption {
	return func(a *Attachment) {
		a.TitleLink = url
	}
}

// WithPretext adds text shown above the attachment block
func WithPretext(pretext string) AttachmentOption {
	return func(a *Attachment) {
		a.Pretext = pretext
	}
}

// WithFallback overrides the plain-text summary shown by clients that
// cannot render rich formatting
func WithFallback(fallback string) AttachmentOption {
	return func(a *Attachment) {
		a.Fallback = fallback
	}
}

// WithField appends a titled value to the attachment. Fields render in
// the order they are added.
func WithField(title, value string, short bool) AttachmentOption {
	return func(a *Attachment) {
		a.Fields = append(a.Fields, Field{Title: title, Value: value, Short: short})
	}
}

// NewAttachment builds an attachment with the required title, text and
// color. The fallback defaults to "<title> - <text>" unless WithFallback
// sets it.
func NewAttachment(title, text string, color Color, opts ...AttachmentOption) (Attachment, error) {
	atc := Attachment{
		Title: title,
		Text:  text,
		Color: color,
	}

	for _, opt := range opts {
		opt(&atc)
	}

	if atc.Fallback == "" {
		atc.Fallback = title + " - " + text
	}

	if err := atc.Validate(); err != nil {
		return Attachment{}, err
	}
	return atc, nil
}

// Validate checks the attachment invariants
func (a *Attachment) Validate() error {
	if a.Title == "" {
		return domain.ErrInvalidArgument.Wrap(goerr.New("attachment title is required"))
	}
	if a.Text == "" {
		return domain.ErrInvalidArgument.Wrap(goerr.New("attachment text is required"))
	}
	return a.Color.Validate()
}
