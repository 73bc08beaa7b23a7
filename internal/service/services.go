package service

import (
	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/rs/zerolog"
)

type Services struct {
	Users        *UserService
	Reservations *ReservationService
	Properties   *PropertyService
}

func NewServices(cfg *config.Config, logger *zerolog.Logger, repos *repository.Repositories) *Services {
	return &Services{
		Users:        NewUserService(repos.Users, cfg.Auth.BcryptCost, logger),
		Reservations: NewReservationService(repos.Reservations),
		Properties:   NewPropertyService(repos.Properties, logger),
	}
}
