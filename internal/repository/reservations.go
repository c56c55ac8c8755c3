package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Reservation links a guest to a property for a date range. Read-only in
// this component: only listing past reservations is exposed.
type Reservation struct {
	ID         int64     `db:"id" json:"id"`
	GuestID    int64     `db:"guest_id" json:"guest_id"`
	PropertyID int64     `db:"property_id" json:"property_id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
}

// ReservationsRepository reads reservations for guests.
type ReservationsRepository struct {
	pool *pgxpool.Pool
}

func NewReservationsRepository(pool *pgxpool.Pool) *ReservationsRepository {
	return &ReservationsRepository{pool: pool}
}

// ListPastForGuest returns up to limit reservations for the guest whose
// end date is strictly before the given cutoff.
//
// The cutoff is caller-supplied rather than evaluated as now() inside the
// query, so "past" is decided by an injectable clock at the service layer
// and the query stays deterministic under test.
func (r *ReservationsRepository) ListPastForGuest(ctx context.Context, guestID int64, before time.Time, limit int) ([]Reservation, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	rows, err := r.pool.Query(ctx, `SELECT id, guest_id, property_id, start_date, end_date
FROM reservations
WHERE reservations.guest_id = $1 AND reservations.end_date < $2
LIMIT $3`,
		guestID, before, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying past reservations: %w", err)
	}

	reservations, err := pgx.CollectRows(rows, pgx.RowToStructByName[Reservation])
	if err != nil {
		return nil, fmt.Errorf("collecting past reservations: %w", err)
	}

	return reservations, nil
}
