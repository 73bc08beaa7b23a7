// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch or persist
// data, abstracting SQL logic away from the service layer.
//
// Every repository method logs store failures and returns them as
// *errs.Error values produced by sqlerr.HandleError. Single-row lookups
// that match nothing return (nil, nil).
package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories need.
// *pgxpool.Pool, *pgxpool.Conn and pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// propertyColumns lists the properties table in model.Property field order.
const propertyColumns = `properties.id, properties.owner_id, properties.title,
	COALESCE(properties.description, '') AS description,
	properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
	properties.street, properties.city, properties.province, properties.post_code, properties.country,
	properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms`

func propertyDest(p *model.Property) []any {
	return []any{
		&p.ID, &p.OwnerID, &p.Title, &p.Description,
		&p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight,
		&p.Street, &p.City, &p.Province, &p.PostCode, &p.Country,
		&p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
	}
}
