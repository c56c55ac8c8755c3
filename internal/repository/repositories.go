package repository

import (
	"github.com/deppfellow/lightbnb/internal/server"
)

// Repositories is a container for all repository instances.
//
// It establishes the dependency injection shape: services receive this one
// container instead of individual repositories.
type Repositories struct {
	Users        *UsersRepository
	Properties   *PropertiesRepository
	Reservations *ReservationsRepository
}

// NewRepositories constructs the repository container from the application
// container (the DB pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:        NewUsersRepository(s.DB.Pool),
		Properties:   NewPropertiesRepository(s.DB.Pool),
		Reservations: NewReservationsRepository(s.DB.Pool),
	}
}
