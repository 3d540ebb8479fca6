package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:    "slackpost",
		Usage:   "Post a message to a Slack incoming webhook",
		Version: "0.1.0",
		Description: `slackpost composes a message payload and posts it to a Slack incoming webhook.

The message text is taken from the positional arguments. The webhook key
(the path after /services/ in the webhook URL) comes from -w/--webhook or
the SLACKPOST_WEBHOOK_KEY environment variable. Channel, username and
icon can be set per invocation or through a config profile.`,
		ArgsUsage: "<text>...",
		Flags:     flags,
		Action:    RunPost,
		Commands: []*cli.Command{
			NewConfigCommand(),
		},
	}
}
