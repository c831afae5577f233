package notifier

import (
	"context"
	"log/slog"
	"ticketwatch/internal/lib/sl"
	"ticketwatch/internal/model"

	"golang.org/x/sync/errgroup"
)

type Notifier interface {
	Notify(ctx context.Context, notification model.Notification) error
}

// Multi sends every notification to all of its notifiers concurrently.
// A failing notifier does not cancel the others.
type Multi []Notifier

var _ Notifier = Multi{}

func (m Multi) Notify(ctx context.Context, notification model.Notification) error {
	var g errgroup.Group
	for _, n := range m {
		g.Go(func() error {
			err := n.Notify(ctx, notification)
			if err != nil {
				slog.Error("notifier failed", sl.Notification(notification), sl.Error(err))
			}
			return err
		})
	}
	return g.Wait()
}
