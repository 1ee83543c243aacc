package impl

import (
	"io"
	"log/slog"
	"time"

	"infinitybasket/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = 10
	cfg.Auth.ResetTokenTTL = time.Hour
	cfg.Client.BaseURL = "https://shop.example.com"

	return cfg
}
