package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/interfaces"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
)

type PostUseCase struct {
	webhook interfaces.Webhook
	config  *model.Config
}

type PostUseCaseOptions struct {
	Webhook interfaces.Webhook
	Config  *model.Config
}

func NewPostUseCase(opts PostUseCaseOptions) *PostUseCase {
	return &PostUseCase{
		webhook: opts.Webhook,
		config:  opts.Config,
	}
}

// Execute resolves the requested profile, composes the message, and
// delivers it. Explicit request fields win over profile values, which
// win over the built-in defaults. With DryRun set the encoded payload
// is returned without touching the network.
func (u *PostUseCase) Execute(ctx context.Context, req *model.PostRequest) (*model.PostResult, error) {
	logger := ctxlog.From(ctx)

	if req == nil {
		return nil, domain.ErrInvalidArgument.Wrap(goerr.New("post request is required"))
	}

	profile, err := u.config.Resolve(req.Profile)
	if err != nil {
		return nil, err
	}

	channel := req.Channel
	if channel == "" {
		channel = profile.Channel
	}

	var msgOpts []model.MessageOption
	if username := req.Username; username != "" {
		msgOpts = append(msgOpts, model.WithUsername(username))
	} else if profile.Username != "" {
		msgOpts = append(msgOpts, model.WithUsername(profile.Username))
	}
	if icon := req.IconEmoji; icon != "" {
		msgOpts = append(msgOpts, model.WithIconEmoji(icon))
	} else if profile.IconEmoji != "" {
		msgOpts = append(msgOpts, model.WithIconEmoji(profile.IconEmoji))
	}

	if req.Title != "" {
		attachment, err := u.buildAttachment(req, profile)
		if err != nil {
			return nil, err
		}
		msgOpts = append(msgOpts, model.WithAttachments(attachment))
	} else if req.HasAttachmentFields() {
		return nil, domain.ErrInvalidArgument.Wrap(goerr.New("attachment fields require a title"))
	}

	msg, err := model.NewMessage(req.Text, channel, msgOpts...)
	if err != nil {
		return nil, err
	}

	payload, err := msg.Payload()
	if err != nil {
		return nil, err
	}

	logger.Debug("post request composed",
		slog.String("channel", msg.Channel),
		slog.String("profile", req.Profile),
		slog.Bool("dry_run", req.DryRun),
		slog.Int("attachments", len(msg.Attachments)),
	)

	if req.DryRun {
		return &model.PostResult{
			DryRun:  true,
			Channel: msg.Channel,
			Payload: payload,
		}, nil
	}

	delivered, err := u.webhook.Post(ctx, req.Key, msg)
	if err != nil {
		return nil, err
	}

	return &model.PostResult{
		Delivered: delivered,
		Channel:   msg.Channel,
		Payload:   payload,
	}, nil
}

// buildAttachment assembles the attachment requested by the title flag.
// The message text doubles as the attachment body.
func (u *PostUseCase) buildAttachment(req *model.PostRequest, profile model.Profile) (model.Attachment, error) {
	color := req.Color
	if color == "" {
		color = profile.Color
	}
	if color == "" {
		color = model.ColorGood
	}

	var opts []model.AttachmentOption
	if req.TitleLink != "" {
		opts = append(opts, model.WithTitleLink(req.TitleLink))
	}
	if req.Pretext != "" {
		opts = append(opts, model.WithPretext(req.Pretext))
	}
	if req.Fallback != "" {
		opts = append(opts, model.WithFallback(req.Fallback))
	}
	for _, field := range req.Fields {
		opts = append(opts, model.WithField(field.Title, field.Value, field.Short))
	}

	return model.NewAttachment(req.Title, req.Text, color, opts...)
}
