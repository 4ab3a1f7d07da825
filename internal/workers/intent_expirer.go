package workers

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	mongorepo "github.com/Darpan-10/HUMAN-API/internal/repositories/mongo"
)

// IntentExpirer periodically archives ACTIVE intents past their
// expires_at so stale goals stop feeding the matcher. Archiving instead
// of deleting keeps the user's history intact.
type IntentExpirer struct {
	Intents  mongorepo.IntentRepository
	Logger   *logrus.Logger
	Interval time.Duration
}

func (w *IntentExpirer) Start(ctx context.Context) error {
	if w.Intents == nil {
		return errors.New("IntentExpirer missing dependency: Intents must be set")
	}
	if w.Interval <= 0 {
		w.Interval = 10 * time.Minute
	}
	if w.Logger == nil {
		w.Logger = logrus.New()
	}

	go w.run(ctx)
	return nil
}

func (w *IntentExpirer) run(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *IntentExpirer) sweep(ctx context.Context) {
	n, err := w.Intents.ArchiveExpired(ctx, time.Now().UTC())
	if err != nil {
		w.Logger.WithError(err).Error("intent expirer: sweep failed")
		return
	}
	if n > 0 {
		w.Logger.WithField("archived", n).Info("intent expirer: archived expired intents")
	}
}
