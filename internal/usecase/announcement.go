package usecase

import (
	"context"
	"fmt"
	"time"

	"slackhook/internal/adapter/slack"
	"slackhook/internal/config"
	"slackhook/internal/domain/model"
	"slackhook/internal/domain/ports"
)

// Announcement composes the configured message and posts it to the webhook.
type Announcement struct {
	notifier   ports.Notifier
	logger     ports.Logger
	webhookURL string
	message    model.Message
	format     string
}

// AnnouncementConfig describes what to send and where.
type AnnouncementConfig struct {
	WebhookURL string
	Message    model.Message
	// Format is config.FormatText or config.FormatHTML.
	Format string
}

// NewAnnouncement constructs an Announcement use case.
func NewAnnouncement(notifier ports.Notifier, logger ports.Logger, cfg AnnouncementConfig) *Announcement {
	return &Announcement{
		notifier:   notifier,
		logger:     logger,
		webhookURL: cfg.WebhookURL,
		message:    cfg.Message,
		format:     cfg.Format,
	}
}

// Run builds the payload and delivers it once.
func (a *Announcement) Run(ctx context.Context) error {
	start := time.Now()

	msg := a.compose()
	body, err := slack.BuildPayload(msg)
	if err != nil {
		a.logger.Error(ctx, "failed to build slack payload", "error", err)
		return fmt.Errorf("build payload: %w", err)
	}

	result, err := a.notifier.Send(ctx, a.webhookURL, body, slack.Headers())
	if err != nil {
		a.logger.Error(ctx, "failed to deliver announcement", "error", err)
		return err
	}

	a.logger.Info(ctx, "announcement delivered", "status", result.StatusCode, "duration", time.Since(start))
	return nil
}

func (a *Announcement) compose() model.Message {
	msg := a.message
	if a.format == config.FormatHTML {
		msg.Text = htmlToSlack(msg.Text)
	}
	return msg
}
