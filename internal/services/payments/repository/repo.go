package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/domain/dao"
)

type PaymentsRepositoryInterface interface {
	UpsertPending(ctx context.Context, userID int, sessionID string) error
	GetStatus(ctx context.Context, userID int) (dao.Payment, bool, error)
}

type PaymentsRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentsRepository(pool *pgxpool.Pool) *PaymentsRepository {
	return &PaymentsRepository{pool: pool}
}

// UpsertPending writes the user's current payment record. The user_id unique
// constraint makes a second checkout attempt overwrite the previous session
// and reset the status to pending.
func (r *PaymentsRepository) UpsertPending(ctx context.Context, userID int, sessionID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payment (user_id, session_id, payment_status)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
		    session_id = EXCLUDED.session_id,
		    payment_status = EXCLUDED.payment_status`,
		userID, sessionID, dao.StatusPending)
	if err != nil {
		return fmt.Errorf("upsert payment: %w", err)
	}
	return nil
}

// GetStatus returns (record, true) when a payment record exists for the user
// and (zero, false) when it does not. Absence is not an error.
func (r *PaymentsRepository) GetStatus(ctx context.Context, userID int) (dao.Payment, bool, error) {
	var p dao.Payment
	p.UserID = userID
	err := r.pool.QueryRow(ctx,
		`SELECT session_id, payment_status FROM payment WHERE user_id = $1`,
		userID).Scan(&p.SessionID, &p.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return dao.Payment{}, false, nil
	}
	if err != nil {
		return dao.Payment{}, false, fmt.Errorf("query payment: %w", err)
	}
	return p, true, nil
}
