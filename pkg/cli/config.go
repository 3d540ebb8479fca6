package cli

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Config struct {
	WebhookKey string
	Channel    string
	Username   string
	IconEmoji  string
	Profile    string
	ConfigPath string
	Title      string
	Color      model.Color
	TitleLink  string
	Pretext    string
	Fallback   string
	Fields     []string
	Timeout    time.Duration
	DryRun     bool
}

// ToPostRequest converts the flag values into a delivery request.
// text is the message body assembled from the positional arguments.
func (c *Config) ToPostRequest(text string) (*model.PostRequest, error) {
	fields, err := parseFields(c.Fields)
	if err != nil {
		return nil, err
	}

	return &model.PostRequest{
		Key:       model.WebhookKey(c.WebhookKey),
		Text:      text,
		Channel:   c.Channel,
		Username:  c.Username,
		IconEmoji: c.IconEmoji,
		Profile:   c.Profile,
		Title:     c.Title,
		Color:     c.Color,
		TitleLink: c.TitleLink,
		Pretext:   c.Pretext,
		Fallback:  c.Fallback,
		Fields:    fields,
		DryRun:    c.DryRun,
	}, nil
}

// parseFields splits repeatable "Title=Value" flag entries. CLI fields
// render side by side in the attachment.
func parseFields(raw []string) ([]model.Field, error) {
	var fields []model.Field
	for _, entry := range raw {
		title, value, ok := strings.Cut(entry, "=")
		if !ok || title == "" {
			return nil, domain.ErrInvalidArgument.Wrap(goerr.New("field must be Title=Value: " + entry))
		}
		fields = append(fields, model.Field{Title: title, Value: value, Short: true})
	}
	return fields, nil
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "webhook",
			Aliases: []string{"w"},
			Usage:   "Webhook key (the path after /services/)",
			Sources: cli.EnvVars("SLACKPOST_WEBHOOK_KEY"),
		},
		&cli.StringFlag{
			Name:    "channel",
			Aliases: []string{"c"},
			Usage:   "Channel to post to, e.g. #general",
		},
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "Name the message is posted as",
		},
		&cli.StringFlag{
			Name:  "icon",
			Usage: "Icon emoji for the message, e.g. :rocket:",
		},
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "Config profile to apply",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to config file",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Attachment title, enables the attachment",
		},
		&cli.StringFlag{
			Name:  "color",
			Usage: "Attachment color: good, warning or danger",
		},
		&cli.StringFlag{
			Name:  "title-link",
			Usage: "URL the attachment title links to",
		},
		&cli.StringFlag{
			Name:  "pretext",
			Usage: "Text shown above the attachment",
		},
		&cli.StringFlag{
			Name:  "fallback",
			Usage: "Plain-text summary for notifications",
		},
		&cli.StringSliceFlag{
			Name:  "field",
			Usage: "Attachment field as Title=Value (repeatable)",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "HTTP request timeout",
			Value: 30 * time.Second,
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the payload without sending it",
			Value: false,
		},
	}
}
