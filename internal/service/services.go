package service

import (
	"time"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Users        *UsersService
	Properties   *PropertiesService
	Reservations *ReservationsService
}

// NewServices constructs the service container, wiring each service to its
// repository, the shared logger, and (for property search) the Redis cache.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:        NewUsersService(repos.Users, s.Logger),
		Properties:   NewPropertiesService(repos.Properties, s.Redis, s.Logger),
		Reservations: NewReservationsService(repos.Reservations, time.Now),
	}, nil
}
