package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/errs"
)

type ExpirationCommands interface {
	// SweepExpiredHolds cancels every provisional hold older than the
	// hold duration in one conditional update. It is idempotent and safe
	// to trigger from any number of concurrent requests.
	SweepExpiredHolds(ctx context.Context) (int64, error)
}

type expirationCommandsImpl struct {
	store        HoldStore
	clock        clock.Clock
	holdDuration time.Duration
}

func NewExpirationCommands(store HoldStore, clk clock.Clock, holdDuration time.Duration) ExpirationCommands {
	return &expirationCommandsImpl{
		store:        store,
		clock:        clk,
		holdDuration: holdDuration,
	}
}

func (e *expirationCommandsImpl) SweepExpiredHolds(ctx context.Context) (int64, error) {
	cutoff := e.clock.Now().Add(-e.holdDuration)

	released, err := e.store.CancelStaleUnverified(ctx, cutoff)
	if err != nil {
		return 0, errs.Wrap(err, "failed to sweep expired holds")
	}
	if released > 0 {
		slog.Info("released expired holds",
			"count", released,
			"cutoff", cutoff)
	}
	return released, nil
}
