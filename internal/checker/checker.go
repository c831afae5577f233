package checker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"ticketwatch/internal/config"
	"ticketwatch/internal/lib/sl"
	"ticketwatch/internal/model"
	"ticketwatch/internal/notifier"
	"time"
)

const (
	seatPath = "/api/performance/seat"
	pagePath = "/performance/index.htm"
)

type Checker struct {
	client   *http.Client
	notifier notifier.Notifier
	config   config.CheckerConfig
}

func New(
	client *http.Client,
	notifier notifier.Notifier,
	config config.CheckerConfig,
) *Checker {
	if client == nil {
		client = &http.Client{Timeout: config.RequestTimeout}
	}
	return &Checker{
		client:   client,
		notifier: notifier,
		config:   config,
	}
}

// Check runs one availability check and notifies when seats show up.
// Failures are logged, never returned.
func (c *Checker) Check(ctx context.Context) {
	result, err := c.Fetch(ctx)
	if err != nil {
		slog.Error("unsuccessful checking of seats", slog.String("prod_id", c.config.ProdID), sl.Error(err))
		return
	}

	slog.Info("successful checking of seats", sl.CheckResult(result), slog.String("body", result.Body))

	if !result.IsAvailable() {
		slog.Info("no seats available", slog.String("prod_id", result.ProdID))
		return
	}

	notification := model.Notification{
		Url:     c.PageURL(),
		Message: c.config.Message,
	}
	slog.Info("seats available, sending notification", sl.Notification(notification))

	if c.notifier == nil {
		return
	}
	// each failing channel is logged by the notifier itself
	_ = c.notifier.Notify(ctx, notification)
}

// Fetch issues the seat request and buffers the whole response body.
func (c *Checker) Fetch(ctx context.Context) (model.CheckResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SeatURL(), nil)
	if err != nil {
		return model.CheckResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", c.PageURL())

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return model.CheckResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.CheckResult{}, fmt.Errorf("failed to read response body: %w", err)
	}

	return model.CheckResult{
		ProdID:  c.config.ProdID,
		Time:    start,
		Latency: time.Since(start),
		Code:    resp.StatusCode,
		Body:    string(body),
	}, nil
}

// SeatURL is the JSON endpoint polled for seat availability.
func (c *Checker) SeatURL() string {
	return c.config.BaseURL + seatPath + "?prodId=" + c.config.ProdID + "&langCd=" + url.QueryEscape(c.config.Lang)
}

// PageURL is the human-facing booking page for the product.
func (c *Checker) PageURL() string {
	return c.config.BaseURL + pagePath + "?langCd=" + url.QueryEscape(c.config.Lang) + "&prodId=" + c.config.ProdID
}
