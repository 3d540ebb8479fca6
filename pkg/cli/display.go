package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/slackpost/pkg/domain/interfaces"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
)

type DisplayManager struct{}

func NewDisplayManager() interfaces.Display {
	return &DisplayManager{}
}

func (d *DisplayManager) ShowResult(result *model.PostResult) {
	if result.DryRun {
		color.New(color.FgCyan).Printf("🔍 Dry run, nothing was sent (channel: %s)\n", result.Channel)
		d.ShowPayload(result.Payload)
		return
	}

	if result.Delivered {
		color.New(color.FgGreen).Printf("✅ Message delivered to %s\n", result.Channel)
		return
	}

	color.New(color.FgRed).Printf("❌ Webhook rejected the message for %s\n", result.Channel)
}

func (d *DisplayManager) ShowPayload(payload []byte) {
	fmt.Println(string(payload))
}
