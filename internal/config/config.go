package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/eisachaudhary/portfolio/internal/typewriter"
	"github.com/eisachaudhary/portfolio/internal/ui"
)

// Config resolves settings from the environment (and a .env file loaded at startup).
type Config struct{ v *viper.Viper }

func New() *Config {
	vv := viper.New()
	vv.AutomaticEnv()
	return &Config{v: vv}
}

func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

// GetAddr returns HOST:PORT; PORT defaults to 8080 and HOST to all interfaces.
func (c *Config) GetAddr() string {
	port := c.v.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	return c.v.GetString("HOST") + ":" + port
}

// GetContentFile returns the optional YAML content override from CONTENT_FILE.
func (c *Config) GetContentFile() string { return c.v.GetString("CONTENT_FILE") }

func (c *Config) GetTemplatesDir() string { return c.getString("TEMPLATES_DIR", "templates") }
func (c *Config) GetStaticDir() string    { return c.getString("STATIC_DIR", "static") }

// GetTypingInterval reads TYPING_INTERVAL as a duration; defaults to 30ms.
func (c *Config) GetTypingInterval() time.Duration {
	return c.getDuration("TYPING_INTERVAL", typewriter.DefaultTypingInterval)
}

// GetCursorInterval reads CURSOR_INTERVAL as a duration; defaults to 500ms.
func (c *Config) GetCursorInterval() time.Duration {
	return c.getDuration("CURSOR_INTERVAL", typewriter.DefaultCursorInterval)
}

func (c *Config) GetScrollThreshold() int {
	if !c.v.IsSet("SCROLL_THRESHOLD") {
		return ui.DefaultScrollThreshold
	}
	return c.v.GetInt("SCROLL_THRESHOLD")
}

// SMTP holds the mail relay used by the contact form.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// GetSMTP mirrors the SMTP_* variables; host, port and recipient have defaults,
// credentials do not.
func (c *Config) GetSMTP() SMTP {
	return SMTP{
		Host: c.getString("SMTP_HOST", "smtp.gmail.com"),
		Port: c.getString("SMTP_PORT", "587"),
		User: c.v.GetString("SMTP_USER"),
		Pass: c.v.GetString("SMTP_PASS"),
		To:   c.getString("TO_EMAIL", "contact@example.com"),
	}
}

// GetContactRate returns how many contact submissions a client may send per minute.
func (c *Config) GetContactRate() int {
	if n := c.v.GetInt("CONTACT_RATE_PER_MINUTE"); n > 0 {
		return n
	}
	return 3
}

func (c *Config) GetOTLPEndpoint() string { return c.v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT") }

// GetLogLevel maps LOG_LEVEL to slog.Level.
// Recognized values: debug, info (default), warn|warning, error.
func (c *Config) GetLogLevel() slog.Level {
	switch strings.ToLower(c.v.GetString("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetLogFormat returns "json" or "text" (default).
func (c *Config) GetLogFormat() string {
	if strings.EqualFold(c.v.GetString("LOG_FORMAT"), "json") {
		return "json"
	}
	return "text"
}

func (c *Config) getString(key, def string) string {
	if v := c.v.GetString(key); v != "" {
		return v
	}
	return def
}

func (c *Config) getDuration(key string, def time.Duration) time.Duration {
	if v := c.v.GetString(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
