package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
)

// ListPastReservationsRequest identifies the guest whose completed stays
// are listed. Limit is optional and defaults at the service layer.
type ListPastReservationsRequest struct {
	GuestID int64 `param:"guest_id" validate:"required,gt=0"`
	Limit   int   `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

func (r *ListPastReservationsRequest) Validate() error {
	return validation.Struct(r)
}

// ReservationsHandler serves a guest's reservation history.
type ReservationsHandler struct {
	Handler
	reservations *service.ReservationsService
}

func NewReservationsHandler(s *server.Server, reservations *service.ReservationsService) *ReservationsHandler {
	return &ReservationsHandler{
		Handler:      NewHandler(s),
		reservations: reservations,
	}
}

// ListPast returns the guest's fully completed reservations. A guest with
// no history gets an empty list, not an error.
func (h *ReservationsHandler) ListPast(c echo.Context, req *ListPastReservationsRequest) ([]repository.Reservation, error) {
	reservations, err := h.reservations.ListPastForGuest(c.Request().Context(), req.GuestID, req.Limit)
	if err != nil {
		return nil, err
	}

	if reservations == nil {
		reservations = []repository.Reservation{}
	}
	return reservations, nil
}
