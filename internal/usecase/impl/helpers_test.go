package impl

import (
	"io"
	"log/slog"
	"time"

	"elevenstore/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Firebase: &config.FirebaseConfig{VapidKey: "test-vapid"},
	}
	cfg.Watchers.AdminFreshness = 30 * time.Second
	cfg.Watchers.PromotionFreshness = 60 * time.Second
	cfg.Notification.DefaultIcon = "/images/logo.png"
	cfg.Notification.Vibrate = []int{200, 100, 200}
	cfg.Notification.PromotionToastDuration = 8 * time.Second

	return cfg
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func boolPtr(b bool) *bool {
	return &b
}
