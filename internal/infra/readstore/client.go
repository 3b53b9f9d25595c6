package readstore

import (
	"context"
	"errors"
	"time"

	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/db"
	"salon-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClientReadStore struct {
	db db.DBTX
}

func NewClientReadStore(dbtx db.DBTX) *ClientReadStore {
	return &ClientReadStore{db: dbtx}
}

func (r *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.ClientSnapshot, error) {
	var (
		snap       commands.ClientSnapshot
		verifiedAt *time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, email, name, verified_at
		FROM clients
		WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.Email, &snap.Name, &verifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "client not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find client", err)
	}
	snap.Verified = verifiedAt != nil
	return &snap, nil
}
