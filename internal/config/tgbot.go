package config

type TelegramBotConfig struct {
	Token  string
	ChatID int64
	APIURL string
	CommonConfig
}

func NewTelegramBotConfig() TelegramBotConfig {
	return TelegramBotConfig{
		Token:        getEnvFromFile("TELEGRAM_TOKEN_FILE", getEnv("TELEGRAM_TOKEN", "")),
		ChatID:       getEnvAsInt64("TELEGRAM_CHAT_ID", 0),
		APIURL:       getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		CommonConfig: NewCommonConfig(),
	}
}

// Enabled reports whether both the token and the destination chat are set.
func (c TelegramBotConfig) Enabled() bool {
	return c.Token != "" && c.ChatID != 0
}
