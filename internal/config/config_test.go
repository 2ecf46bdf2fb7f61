package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	c := New()

	if got := c.GetTypingInterval(); got != 30*time.Millisecond {
		t.Fatalf("expected 30ms, got %s", got)
	}
	if got := c.GetCursorInterval(); got != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %s", got)
	}
	if got := c.GetScrollThreshold(); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := c.GetTemplatesDir(); got != "templates" {
		t.Fatalf("expected templates, got %q", got)
	}
	if got := c.GetContactRate(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestGetAddr(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	c := New()
	if got := c.GetAddr(); got != ":8080" {
		t.Fatalf("expected :8080, got %q", got)
	}

	t.Setenv("PORT", "9000")
	t.Setenv("HOST", "127.0.0.1")
	if got := c.GetAddr(); got != "127.0.0.1:9000" {
		t.Fatalf("expected 127.0.0.1:9000, got %q", got)
	}
}

func TestDurationsFromEnv(t *testing.T) {
	t.Setenv("TYPING_INTERVAL", "10ms")
	t.Setenv("CURSOR_INTERVAL", "not-a-duration")
	c := New()

	if got := c.GetTypingInterval(); got != 10*time.Millisecond {
		t.Fatalf("expected 10ms, got %s", got)
	}
	if got := c.GetCursorInterval(); got != 500*time.Millisecond {
		t.Fatalf("expected default on bad value, got %s", got)
	}
}

func TestScrollThresholdOverride(t *testing.T) {
	c := New()
	c.Set("SCROLL_THRESHOLD", 0)
	if got := c.GetScrollThreshold(); got != 0 {
		t.Fatalf("expected explicit 0, got %d", got)
	}
}

func TestGetLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		c := New()
		c.Set("LOG_LEVEL", in)
		if got := c.GetLogLevel(); got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestGetSMTPDefaults(t *testing.T) {
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASS", "")
	s := New().GetSMTP()
	if s.Host != "smtp.gmail.com" || s.Port != "587" {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.User != "" || s.Pass != "" {
		t.Fatalf("expected no default credentials")
	}
}
