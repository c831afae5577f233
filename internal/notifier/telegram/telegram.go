package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"ticketwatch/internal/config"
	"ticketwatch/internal/lib/sl"
	"ticketwatch/internal/model"

	"gopkg.in/telebot.v4"
)

// TGBot delivers notifications to a single Telegram chat. It only sends;
// updates are never polled.
type TGBot struct {
	bot    *telebot.Bot
	config config.TelegramBotConfig
}

func New(client *http.Client, config config.TelegramBotConfig) (*TGBot, error) {
	if client == nil {
		client = &http.Client{Timeout: config.RequestTimeout}
	}

	bot, err := telebot.NewBot(telebot.Settings{
		URL:     config.APIURL,
		Token:   config.Token,
		Client:  client,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &TGBot{
		bot:    bot,
		config: config,
	}, nil
}

func (t *TGBot) Notify(ctx context.Context, notification model.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slog.Info(
		"sending notification to telegram chat",
		slog.Int64("chat_id", t.config.ChatID),
		slog.String("message", notification.Message),
	)
	if _, err := t.bot.Send(telebot.ChatID(t.config.ChatID), notification.Message); err != nil {
		return fmt.Errorf("failed to send message to chat: %w", err)
	}

	slog.Info("telegram notification sent", sl.Notification(notification))
	return nil
}
