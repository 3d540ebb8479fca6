package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
	"github.com/m-mizutani/slackpost/pkg/usecase"
	"github.com/m-mizutani/slackpost/pkg/webhook"
	"github.com/urfave/cli/v3"
)

func RunPost(ctx context.Context, cmd *cli.Command) error {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	ctx = ctxlog.With(ctx, logger)

	config := &Config{
		WebhookKey: cmd.String("webhook"),
		Channel:    cmd.String("channel"),
		Username:   cmd.String("username"),
		IconEmoji:  cmd.String("icon"),
		Profile:    cmd.String("profile"),
		ConfigPath: cmd.String("config"),
		Title:      cmd.String("title"),
		Color:      model.Color(cmd.String("color")),
		TitleLink:  cmd.String("title-link"),
		Pretext:    cmd.String("pretext"),
		Fallback:   cmd.String("fallback"),
		Fields:     cmd.StringSlice("field"),
		Timeout:    cmd.Duration("timeout"),
		DryRun:     cmd.Bool("dry-run"),
	}

	text := strings.Join(cmd.Args().Slice(), " ")
	req, err := config.ToPostRequest(text)
	if err != nil {
		return err
	}

	fileConfig, err := loadFileConfig(ctx, config.ConfigPath)
	if err != nil {
		return err
	}

	post := usecase.NewPostUseCase(usecase.PostUseCaseOptions{
		Webhook: webhook.New(webhook.WithTimeout(config.Timeout)),
		Config:  fileConfig,
	})

	result, err := post.Execute(ctx, req)
	if err != nil {
		return err
	}

	display := NewDisplayManager()
	display.ShowResult(result)

	if !result.DryRun && !result.Delivered {
		return fmt.Errorf("webhook rejected the message")
	}
	return nil
}

// loadFileConfig resolves the config in order: explicit path, working
// directory, default location.
func loadFileConfig(ctx context.Context, path string) (*model.Config, error) {
	logger := ctxlog.From(ctx)
	service := usecase.NewConfigService()

	if path != "" {
		return service.Load(path)
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return nil, domain.ErrConfiguration.Wrap(err)
	}

	config, foundPath, err := service.LoadFromDirectory(currentDir)
	if err != nil {
		return nil, err
	}
	if foundPath != "" {
		logger.Debug("loaded project config",
			slog.String("path", foundPath),
		)
		return config, nil
	}

	return service.LoadDefault()
}
