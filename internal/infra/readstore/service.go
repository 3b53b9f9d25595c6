package readstore

import (
	"context"
	"errors"
	"time"

	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/db"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.ServiceSnapshot, error) {
	var (
		snap        commands.ServiceSnapshot
		durationMin int
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, salon_id, name, duration_min, price_cents, is_active
		FROM services
		WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.SalonID, &snap.Name, &durationMin, &snap.PriceCents, &snap.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "service not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find service", err)
	}
	snap.Duration = time.Duration(durationMin) * time.Minute
	return &snap, nil
}

// Service is the read-side projection of FindByID.
func (r *ServiceReadStore) Service(ctx context.Context, id uuid.UUID) (*queries.ServiceInfo, error) {
	snap, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.ServiceInfo{
		ID:         snap.ID,
		SalonID:    snap.SalonID,
		Duration:   snap.Duration,
		PriceCents: snap.PriceCents,
		IsActive:   snap.IsActive,
	}, nil
}
