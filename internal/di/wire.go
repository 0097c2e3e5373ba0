//go:build wireinject

package di

import (
	"os"

	"github.com/google/wire"

	"slackhook/internal/adapter/httpclient"
	"slackhook/internal/adapter/logging"
	"slackhook/internal/adapter/slack"
	"slackhook/internal/app"
	"slackhook/internal/config"
	"slackhook/internal/domain/model"
	"slackhook/internal/domain/ports"
	"slackhook/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(args config.Args) (*app.App, error) {
	wire.Build(
		config.Load,
		provideLogger,
		provideTransport,
		slack.NewWebhook,
		wire.Bind(new(ports.Notifier), new(*slack.Webhook)),
		provideAnnouncementConfig,
		usecase.NewAnnouncement,
		wire.Bind(new(app.Announcer), new(*usecase.Announcement)),
		provideSchedule,
		app.New,
	)
	return nil, nil
}

func provideLogger(cfg *config.Config) ports.Logger {
	return logging.NewFromFormat(cfg.LogFormat, cfg.LogLevel, os.Stdout)
}

func provideTransport(cfg *config.Config, logger ports.Logger) ports.Transport {
	return httpclient.New(cfg.RequestTimeout, logger)
}

func provideAnnouncementConfig(cfg *config.Config) usecase.AnnouncementConfig {
	return usecase.AnnouncementConfig{
		WebhookURL: cfg.WebhookURL,
		Message: model.Message{
			Text:     cfg.Message,
			Channel:  cfg.Channel,
			Username: cfg.Username,
			Icon:     cfg.IconEmoji,
		},
		Format: cfg.MessageFormat,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
