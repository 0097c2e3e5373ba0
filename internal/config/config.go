package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Args are the command-line words passed after the program name.
type Args []string

// Message formats accepted in SLACK_MESSAGE_FORMAT.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Config contains runtime configuration values.
type Config struct {
	WebhookURL     string
	Channel        string
	Username       string
	IconEmoji      string
	Message        string
	MessageFormat  string
	ScheduleCron   string
	RequestTimeout time.Duration
	LogFormat      string
	LogLevel       string
}

const (
	defaultTimeout       = 30 * time.Second
	defaultMessageFormat = FormatText
	defaultLogFormat     = "json"
	defaultLogLevel      = "info"
)

var dotenvFiles = []string{".env.local", ".env"}

// Load builds a Config from dotenv files, environment variables and args.
// Non-empty args replace SLACK_MESSAGE.
func Load(args Args) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		WebhookURL:     strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL")),
		Channel:        os.Getenv("SLACK_CHANNEL"),
		Username:       os.Getenv("SLACK_USERNAME"),
		IconEmoji:      os.Getenv("SLACK_ICON_EMOJI"),
		Message:        os.Getenv("SLACK_MESSAGE"),
		MessageFormat:  strings.ToLower(getenvDefault("SLACK_MESSAGE_FORMAT", defaultMessageFormat)),
		ScheduleCron:   strings.TrimSpace(os.Getenv("SCHEDULE_CRON")),
		RequestTimeout: parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		LogFormat:      getenvDefault("LOG_FORMAT", defaultLogFormat),
		LogLevel:       getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if len(args) > 0 {
		cfg.Message = strings.Join(args, " ")
	}

	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("SLACK_WEBHOOK_URL is required")
	}

	switch cfg.MessageFormat {
	case FormatText, FormatHTML:
	default:
		return nil, fmt.Errorf("SLACK_MESSAGE_FORMAT must be %q or %q, got %q", FormatText, FormatHTML, cfg.MessageFormat)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

// loadDotEnv sets variables from dotenv files in the working directory.
// Variables already present in the environment win.
func loadDotEnv() error {
	if dotEnvDisabled() {
		return nil
	}
	for _, p := range dotenvFiles {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func dotEnvDisabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SLACKHOOK_DOTENV"))) {
	case "0", "false", "off", "no":
		return true
	default:
		return false
	}
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
