package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
)

type ReservationStore interface {
	ListByGuest(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error)
}

type ReservationService struct {
	reservations ReservationStore
}

func NewReservationService(reservations ReservationStore) *ReservationService {
	return &ReservationService{reservations: reservations}
}

// ListForGuest returns the guest's reservations, earliest first.
// A limit of 0 means DefaultLimit.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error) {
	if guestID <= 0 {
		return nil, invalidID("guest_id")
	}
	limit, err := resolveLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.reservations.ListByGuest(ctx, guestID, limit)
}
