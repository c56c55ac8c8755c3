package service

import (
	"context"
	"time"

	"github.com/deppfellow/lightbnb/internal/repository"
)

// ReservationStore is the subset of the reservations repository the service
// needs.
type ReservationStore interface {
	ListPastForGuest(ctx context.Context, guestID int64, before time.Time, limit int) ([]repository.Reservation, error)
}

// ReservationsService lists a guest's completed stays. The clock is
// injected so tests can pin "today".
type ReservationsService struct {
	store ReservationStore
	now   func() time.Time
}

func NewReservationsService(store ReservationStore, now func() time.Time) *ReservationsService {
	if now == nil {
		now = time.Now
	}
	return &ReservationsService{store: store, now: now}
}

// ListPastForGuest returns up to limit reservations whose stay has fully
// ended. A reservation ending today is not past: the cutoff is midnight at
// the start of the current day, and the store compares end_date strictly
// below it.
func (s *ReservationsService) ListPastForGuest(ctx context.Context, guestID int64, limit int) ([]repository.Reservation, error) {
	if limit <= 0 {
		limit = repository.DefaultSearchLimit
	}

	n := s.now()
	cutoff := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())

	return s.store.ListPastForGuest(ctx, guestID, cutoff, limit)
}
