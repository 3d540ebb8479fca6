package interfaces

import (
	"context"

	"github.com/m-mizutani/slackpost/pkg/domain/model"
)

// Webhook delivers a composed message to an incoming webhook endpoint.
// Post reports true when the endpoint acknowledged the message and false
// when it rejected the payload; err covers transport failures only.
type Webhook interface {
	Post(ctx context.Context, key model.WebhookKey, msg *model.Message) (bool, error)
}
