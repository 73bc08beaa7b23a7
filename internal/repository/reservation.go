package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const listGuestReservations = `
SELECT reservations.id, reservations.guest_id, reservations.property_id,
	reservations.start_date, reservations.end_date,
	` + propertyColumns + `,
	AVG(property_reviews.rating) AS average_rating
FROM reservations
JOIN property_reviews ON reservations.id = property_reviews.reservation_id
JOIN properties ON properties.id = property_reviews.property_id
`

type ReservationRepository struct {
	db     DBTX
	logger *zerolog.Logger
}

func NewReservationRepository(db DBTX, logger *zerolog.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, logger: logger}
}

// ListByGuest returns up to limit reservations made by guestID, earliest start first,
// each with the reserved property and the average rating of its reviews.
// Reservations without reviews are not returned.
func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error) {
	sql, args, err := query.New(listGuestReservations).
		Where("reservations.guest_id = ?", guestID).
		GroupBy("reservations.id", "properties.id").
		OrderBy("reservations.start_date").
		Limit(limit).
		Build()
	if err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Msg("failed to build reservation query")
		return nil, sqlerr.HandleError(err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Int64("guest_id", guestID).Msg("failed to list reservations")
		return nil, sqlerr.HandleError(err)
	}
	defer rows.Close()

	reservations := []model.GuestReservation{}
	for rows.Next() {
		var gr model.GuestReservation
		dest := []any{
			&gr.Reservation.ID, &gr.Reservation.GuestID, &gr.Reservation.PropertyID,
			&gr.Reservation.StartDate, &gr.Reservation.EndDate,
		}
		dest = append(dest, propertyDest(&gr.Property)...)
		dest = append(dest, &gr.AverageRating)

		if err := rows.Scan(dest...); err != nil {
			r.logger.Error().Stack().Err(errors.WithStack(err)).Int64("guest_id", guestID).Msg("failed to scan reservation")
			return nil, sqlerr.HandleError(err)
		}
		reservations = append(reservations, gr)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Int64("guest_id", guestID).Msg("failed to iterate reservations")
		return nil, sqlerr.HandleError(err)
	}

	return reservations, nil
}
