package repository

import (
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *zerolog.Logger) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := zerolog.Nop()
	return mock, &logger
}

var propertyColumnNames = []string{
	"id", "owner_id", "title", "description", "thumbnail_photo_url", "cover_photo_url",
	"cost_per_night", "street", "city", "province", "post_code", "country",
	"parking_spaces", "number_of_bathrooms", "number_of_bedrooms",
}

func propertyValues(id int64, city string, cost int64) []any {
	return []any{
		id, int64(1), "Habit mix", "description", "https://img/thumb.jpg", "https://img/cover.jpg",
		cost, "651 Nami Road", city, "Ontario", "83680", "Canada",
		int32(0), int32(2), int32(3),
	}
}
