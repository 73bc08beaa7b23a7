package repository

import (
	"github.com/rs/zerolog"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Reservations *ReservationRepository
	Properties   *PropertyRepository
}

// NewRepositories constructs the repository container over a shared pool handle.
func NewRepositories(db DBTX, logger *zerolog.Logger) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db, logger),
		Reservations: NewReservationRepository(db, logger),
		Properties:   NewPropertyRepository(db, logger),
	}
}
