package model

import "time"

// Reservation is a row of the reservations table.
type Reservation struct {
	ID         int64     `json:"id" db:"id"`
	GuestID    int64     `json:"guest_id" db:"guest_id"`
	PropertyID int64     `json:"property_id" db:"property_id"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
}

// GuestReservation is a reservation joined with the reserved property and
// the average rating of that reservation's reviews.
type GuestReservation struct {
	Reservation   Reservation `json:"reservation"`
	Property      Property    `json:"property"`
	AverageRating float64     `json:"average_rating"`
}
