package handler

import (
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health       *HealthHandler
	Users        *UsersHandler
	Properties   *PropertiesHandler
	Reservations *ReservationsHandler
}

// NewHandlers constructs the handler container, wiring each handler to the
// application container and its service.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Users:        NewUsersHandler(s, services.Users),
		Properties:   NewPropertiesHandler(s, services.Properties),
		Reservations: NewReservationsHandler(s, services.Reservations),
	}
}
