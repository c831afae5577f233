package config

type LogConfig struct {
	Level string
}

func NewLogConfig() LogConfig {
	return LogConfig{
		Level: getEnv("LOG_LEVEL", "info"),
	}
}
