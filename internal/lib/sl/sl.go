package sl

import (
	"log/slog"
	"ticketwatch/internal/model"
)

func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

func CheckResult(result model.CheckResult) slog.Attr {
	return slog.Group("check_result",
		slog.String("prod_id", result.ProdID),
		slog.Int("code", result.Code),
		slog.Int64("latency_ms", result.Latency.Milliseconds()),
	)
}

func Notification(notification model.Notification) slog.Attr {
	return slog.Group("notification",
		slog.String("url", notification.Url),
		slog.String("message", notification.Message),
	)
}
