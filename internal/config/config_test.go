package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SLACKHOOK_DOTENV", "off")
	for _, key := range []string{
		"SLACK_WEBHOOK_URL", "SLACK_CHANNEL", "SLACK_USERNAME", "SLACK_ICON_EMOJI",
		"SLACK_MESSAGE", "SLACK_MESSAGE_FORMAT", "SCHEDULE_CRON", "REQUEST_TIMEOUT",
		"LOG_FORMAT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SLACK_WEBHOOK_URL", "https://example.invalid/webhook")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.RequestTimeout != defaultTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultTimeout)
	}
	if cfg.MessageFormat != FormatText || cfg.LogFormat != "json" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ScheduleCron != "" {
		t.Fatalf("ScheduleCron = %q, want empty", cfg.ScheduleCron)
	}
}

func TestLoadFromEnv(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SLACK_WEBHOOK_URL", "https://example.invalid/webhook")
	t.Setenv("SLACK_CHANNEL", "#ops")
	t.Setenv("SLACK_USERNAME", "deploy-bot")
	t.Setenv("SLACK_ICON_EMOJI", ":rocket:")
	t.Setenv("SLACK_MESSAGE", "<b>shipped</b>")
	t.Setenv("SLACK_MESSAGE_FORMAT", "HTML")
	t.Setenv("SCHEDULE_CRON", "*/5 * * * *")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Channel != "#ops" || cfg.Username != "deploy-bot" || cfg.IconEmoji != ":rocket:" {
		t.Fatalf("overrides = %+v", cfg)
	}
	if cfg.MessageFormat != FormatHTML {
		t.Fatalf("MessageFormat = %q, want html", cfg.MessageFormat)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if cfg.ScheduleCron != "*/5 * * * *" {
		t.Fatalf("ScheduleCron = %q", cfg.ScheduleCron)
	}
}

func TestLoadArgsOverrideMessage(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SLACK_WEBHOOK_URL", "https://example.invalid/webhook")
	t.Setenv("SLACK_MESSAGE", "from env")

	cfg, err := Load(Args{"build", "42", "passed"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Message != "build 42 passed" {
		t.Fatalf("Message = %q", cfg.Message)
	}
}

func TestLoadErrors(t *testing.T) {
	setBaseEnv(t)
	if _, err := Load(nil); err == nil {
		t.Fatal("Load() without webhook URL succeeded")
	}

	t.Setenv("SLACK_WEBHOOK_URL", "https://example.invalid/webhook")
	t.Setenv("SLACK_MESSAGE_FORMAT", "markdown")
	if _, err := Load(nil); err == nil {
		t.Fatal("Load() with unknown message format succeeded")
	}
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SLACK_WEBHOOK_URL", "https://example.invalid/webhook")
	for _, v := range []string{"soon", "-1s", "0"} {
		t.Setenv("REQUEST_TIMEOUT", v)
		cfg, err := Load(nil)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.RequestTimeout != defaultTimeout {
			t.Fatalf("REQUEST_TIMEOUT=%q gave %v, want default", v, cfg.RequestTimeout)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SLACKHOOK_DOTENV", "")
	// godotenv only fills unset variables.
	os.Unsetenv("SLACK_WEBHOOK_URL")
	os.Unsetenv("SLACK_CHANNEL")
	t.Setenv("SLACK_USERNAME", "from-env")

	dir := t.TempDir()
	content := "SLACK_WEBHOOK_URL=https://example.invalid/dotenv\nSLACK_CHANNEL=#dotenv\nSLACK_USERNAME=from-file\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevDir) })
	t.Cleanup(func() {
		os.Unsetenv("SLACK_WEBHOOK_URL")
		os.Unsetenv("SLACK_CHANNEL")
	})

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WebhookURL != "https://example.invalid/dotenv" || cfg.Channel != "#dotenv" {
		t.Fatalf("dotenv values not applied: %+v", cfg)
	}
	if cfg.Username != "from-env" {
		t.Fatalf("Username = %q, environment must win over .env", cfg.Username)
	}
}
