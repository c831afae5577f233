package config

type SlackConfig struct {
	Webhook   string
	Username  string
	IconEmoji string
	CommonConfig
}

func NewSlackConfig() SlackConfig {
	return SlackConfig{
		Webhook:      getEnv("SLACK_WEBHOOK", ""),
		Username:     getEnv("SLACK_USERNAME", ""),
		IconEmoji:    getEnv("SLACK_ICON_EMOJI", ""),
		CommonConfig: NewCommonConfig(),
	}
}
