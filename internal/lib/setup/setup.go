package setup

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"ticketwatch/internal/config"
	"ticketwatch/internal/lib/sl"
	"ticketwatch/internal/notifier"
	"ticketwatch/internal/notifier/slack"
	"ticketwatch/internal/notifier/telegram"

	"github.com/joho/godotenv"
)

// LoadEnv reads the given dotenv files (".env" when none are given) into the
// process environment. Variables that are already set are left untouched
// and missing files are skipped.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		err := godotenv.Load(file)
		if err == nil {
			slog.Debug("loaded environment file", slog.String("file", file))
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to load environment file", slog.String("file", file), sl.Error(err))
		}
	}
}

// Notifiers builds the set of configured notification channels. Slack is
// always present and is a no-op without a webhook; Telegram is added only
// when its token and chat id are set.
func Notifiers(client *http.Client) notifier.Multi {
	notifiers := notifier.Multi{
		slack.New(client, config.NewSlackConfig()),
	}

	tgConfig := config.NewTelegramBotConfig()
	if !tgConfig.Enabled() {
		return notifiers
	}

	tgbot, err := telegram.New(client, tgConfig)
	if err != nil {
		slog.Error("failed to create tg bot", sl.Error(err))
		return notifiers
	}
	return append(notifiers, tgbot)
}
