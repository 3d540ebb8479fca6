package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
)

// Hyperlink renders a URL in the webhook link markup. The webhook renders
// "<url>" as a bare link and "<url|text>" as a link labeled with text.
func Hyperlink(url, text string) (string, error) {
	if url == "" {
		return "", domain.ErrInvalidArgument.Wrap(goerr.New("url is required"))
	}

	if text == "" {
		return "<" + url + ">", nil
	}
	return "<" + url + "|" + text + ">", nil
}
