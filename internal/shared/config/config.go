package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv        string
	LogLevel      string
	EncryptionKey string
	Postgres      PostgresConfig
	Bot           BotConfig
	Admin         AdminConfig
	Payment       PaymentConfig
}

// PostgresConfig holds the database connection settings.
type PostgresConfig struct {
	URL string
}

// BotConfig holds the Telegram bot settings.
type BotConfig struct {
	Token       string
	Mode        string // "polling" or "webhook"
	Workers     int
	WebhookURL  string
	WebhookPort string
	// SendRate is the outbound API budget in requests per second.
	SendRate  float64
	SendBurst int
	// AdminIDs receive new-order and new-category notifications.
	AdminIDs        []int64
	SupportPhone    string
	SupportUsername string
}

// AdminConfig holds the admin web panel settings.
type AdminConfig struct {
	Addr         string
	Username     string
	PasswordHash string
	JWTSecret    string
	SessionTTL   time.Duration
}

// PaymentConfig holds the card payment settings.
type PaymentConfig struct {
	CheckoutURL string
}

// IsDev reports whether the app runs in development mode.
func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

var bindings = map[string]string{
	"app.env":              "APP_ENV",
	"log.level":            "LOG_LEVEL",
	"encryption.key":       "ENCRYPTION_KEY",
	"postgres.url":         "DATABASE_URL",
	"bot.token":            "BOT_TOKEN",
	"bot.mode":             "BOT_MODE",
	"bot.workers":          "BOT_WORKERS",
	"bot.webhook_url":      "BOT_WEBHOOK_URL",
	"bot.webhook_port":     "BOT_WEBHOOK_PORT",
	"bot.send_rate":        "BOT_SEND_RATE",
	"bot.send_burst":       "BOT_SEND_BURST",
	"bot.admin_ids":        "BOT_ADMIN_IDS",
	"bot.support_phone":    "SUPPORT_PHONE",
	"bot.support_username": "SUPPORT_USERNAME",
	"admin.addr":           "ADMIN_ADDR",
	"admin.username":       "ADMIN_USERNAME",
	"admin.password_hash":  "ADMIN_PASSWORD_HASH",
	"admin.jwt_secret":     "ADMIN_JWT_SECRET",
	"admin.session_ttl":    "ADMIN_SESSION_TTL",
	"payment.checkout_url": "PAYMENT_CHECKOUT_URL",
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// 1. Load .env file into the process environment
	if err := godotenv.Load(); err != nil {
		// A missing file is fine in prod; anything else is not.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// 2. Explicitly bind viper keys to env var names
	v := viper.New()
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	// 3. Set defaults
	v.SetDefault("app.env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("bot.mode", "polling")
	v.SetDefault("bot.workers", 10)
	v.SetDefault("bot.webhook_port", "8443")
	v.SetDefault("bot.send_rate", 25.0)
	v.SetDefault("bot.send_burst", 5)
	v.SetDefault("bot.support_phone", "+998 90 123 45 67")
	v.SetDefault("bot.support_username", "shop_support")
	v.SetDefault("admin.addr", ":8080")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.session_ttl", "12h")
	v.SetDefault("payment.checkout_url", "https://pay.example.uz/checkout")

	adminIDs, err := parseIDs(v.GetString("bot.admin_ids"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOT_ADMIN_IDS: %w", err)
	}

	// 4. Get values directly from viper
	cfg := Config{
		AppEnv:        v.GetString("app.env"),
		LogLevel:      v.GetString("log.level"),
		EncryptionKey: v.GetString("encryption.key"),
		Postgres: PostgresConfig{
			URL: v.GetString("postgres.url"),
		},
		Bot: BotConfig{
			Token:           v.GetString("bot.token"),
			Mode:            v.GetString("bot.mode"),
			Workers:         v.GetInt("bot.workers"),
			WebhookURL:      v.GetString("bot.webhook_url"),
			WebhookPort:     v.GetString("bot.webhook_port"),
			SendRate:        v.GetFloat64("bot.send_rate"),
			SendBurst:       v.GetInt("bot.send_burst"),
			AdminIDs:        adminIDs,
			SupportPhone:    v.GetString("bot.support_phone"),
			SupportUsername: strings.TrimPrefix(v.GetString("bot.support_username"), "@"),
		},
		Admin: AdminConfig{
			Addr:         v.GetString("admin.addr"),
			Username:     v.GetString("admin.username"),
			PasswordHash: v.GetString("admin.password_hash"),
			JWTSecret:    v.GetString("admin.jwt_secret"),
			SessionTTL:   v.GetDuration("admin.session_ttl"),
		},
		Payment: PaymentConfig{
			CheckoutURL: v.GetString("payment.checkout_url"),
		},
	}

	// 5. Validation
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.EncryptionKey == "" {
		return errors.New("ENCRYPTION_KEY is not set in environment or .env file")
	}
	if len(c.EncryptionKey) != 64 {
		return fmt.Errorf("ENCRYPTION_KEY must be a 64-character hex string (32 bytes), but got %d chars", len(c.EncryptionKey))
	}
	if c.Postgres.URL == "" {
		return errors.New("DATABASE_URL is not set")
	}
	switch c.Bot.Mode {
	case "polling":
	case "webhook":
		if c.Bot.WebhookURL == "" {
			return errors.New("BOT_WEBHOOK_URL is required in webhook mode")
		}
	default:
		return fmt.Errorf("BOT_MODE must be 'polling' or 'webhook', got %q", c.Bot.Mode)
	}
	if c.Bot.Workers < 1 {
		return fmt.Errorf("BOT_WORKERS must be positive, got %d", c.Bot.Workers)
	}
	if c.Bot.SendRate <= 0 || c.Bot.SendBurst < 1 {
		return errors.New("BOT_SEND_RATE and BOT_SEND_BURST must be positive")
	}
	if c.Admin.SessionTTL <= 0 {
		return errors.New("ADMIN_SESSION_TTL must be a positive duration")
	}
	return nil
}

// parseIDs parses a comma separated list of Telegram ids.
func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
