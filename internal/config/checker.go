package config

const (
	DefaultProdID  = "211992"
	DefaultBaseURL = "https://tkglobal.melon.com"
	DefaultMessage = "🎫 TWICE票來了！快搶！"
)

type CheckerConfig struct {
	ProdID    string
	BaseURL   string
	Lang      string
	UserAgent string
	Message   string
	CommonConfig
}

func NewCheckerConfig() CheckerConfig {
	return CheckerConfig{
		ProdID:       getEnv("PROD_ID", DefaultProdID),
		BaseURL:      getEnv("CHECKER_BASE_URL", DefaultBaseURL),
		Lang:         getEnv("CHECKER_LANG", "EN"),
		UserAgent:    getEnv("CHECKER_USER_AGENT", "Mozilla/5.0"),
		Message:      getEnv("NOTIFY_MESSAGE", DefaultMessage),
		CommonConfig: NewCommonConfig(),
	}
}
