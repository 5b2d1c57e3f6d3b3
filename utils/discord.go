package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"nutrify/config"

	"go.uber.org/zap"
)

// DiscordWebhook posts operational alerts to a Discord channel webhook.
// An empty webhook URL turns alerting into a logged no-op.
type DiscordWebhook struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewDiscordWebhook builds the webhook poster from the loaded configuration.
func NewDiscordWebhook(logger *zap.Logger) *DiscordWebhook {
	return &DiscordWebhook{
		url:        strings.TrimSpace(config.AppConfig.DiscordWebhookURL),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// Enabled reports whether a webhook URL is configured.
func (d *DiscordWebhook) Enabled() bool {
	return d != nil && d.url != ""
}

// PostMessage fires a single text message at the webhook. Best-effort: the
// caller is expected to only log the returned error.
func (d *DiscordWebhook) PostMessage(ctx context.Context, content string) error {
	if !d.Enabled() {
		d.logger.Info("discord: no webhook URL configured, skipping alert", zap.String("content", content))
		return nil
	}

	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return fmt.Errorf("discord: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("discord: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("discord: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord: webhook returned %d", resp.StatusCode)
	}
	return nil
}
