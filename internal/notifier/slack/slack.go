package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"ticketwatch/internal/config"
	"ticketwatch/internal/lib/sl"
	"ticketwatch/internal/model"
)

type payload struct {
	Text      string `json:"text"`
	LinkNames int    `json:"link_names"`
	Username  string `json:"username,omitempty"`
	IconEmoji string `json:"icon_emoji,omitempty"`
}

// Webhook posts notifications to a Slack incoming webhook. With an empty
// webhook URL every Notify is a no-op.
type Webhook struct {
	client *http.Client
	config config.SlackConfig
}

func New(client *http.Client, config config.SlackConfig) *Webhook {
	if client == nil {
		client = &http.Client{Timeout: config.RequestTimeout}
	}
	return &Webhook{
		client: client,
		config: config,
	}
}

func (w *Webhook) Enabled() bool {
	return w.config.Webhook != ""
}

func (w *Webhook) Notify(ctx context.Context, notification model.Notification) error {
	if !w.Enabled() {
		return nil
	}

	body, err := w.encode(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.config.Webhook, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create slack request: %w", err)
	}
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(len(body)))

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	slog.Info("slack notification sent", slog.Int("code", resp.StatusCode), sl.Notification(notification))
	return nil
}

func (w *Webhook) encode(notification model.Notification) ([]byte, error) {
	return json.Marshal(payload{
		Text:      notification.Message,
		LinkNames: 1,
		Username:  w.config.Username,
		IconEmoji: w.config.IconEmoji,
	})
}
