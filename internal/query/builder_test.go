package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = `
SELECT properties.*, AVG(property_reviews.rating) AS average_rating
FROM properties
JOIN property_reviews ON properties.id = property_id
`

func TestBuild(t *testing.T) {
	const head = "SELECT properties.*, AVG(property_reviews.rating) AS average_rating\nFROM properties\nJOIN property_reviews ON properties.id = property_id"

	tests := []struct {
		name     string
		build    func(b *Builder)
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no filters",
			build:    func(b *Builder) { b.GroupBy("properties.id").OrderBy("cost_per_night").Limit(10) },
			wantSQL:  head + " GROUP BY properties.id ORDER BY cost_per_night LIMIT $1",
			wantArgs: []any{10},
		},
		{
			name: "price range",
			build: func(b *Builder) {
				b.Where("cost_per_night >= ?", int64(5000)).
					Where("cost_per_night <= ?", int64(15000)).
					GroupBy("properties.id").
					OrderBy("cost_per_night").
					Limit(10)
			},
			wantSQL:  head + " WHERE cost_per_night >= $1 AND cost_per_night <= $2 GROUP BY properties.id ORDER BY cost_per_night LIMIT $3",
			wantArgs: []any{int64(5000), int64(15000), 10},
		},
		{
			name: "city and rating",
			build: func(b *Builder) {
				b.Where("properties.city ILIKE ?", Contains("Vancouver")).
					GroupBy("properties.id").
					Having("AVG(property_reviews.rating) >= ?", float64(4)).
					OrderBy("cost_per_night").
					Limit(5)
			},
			wantSQL:  head + " WHERE properties.city ILIKE $1 GROUP BY properties.id HAVING AVG(property_reviews.rating) >= $2 ORDER BY cost_per_night LIMIT $3",
			wantArgs: []any{"%Vancouver%", float64(4), 5},
		},
		{
			name: "every filter",
			build: func(b *Builder) {
				b.Where("properties.city ILIKE ?", "%a%").
					Where("properties.owner_id = ?", int64(7)).
					Where("cost_per_night BETWEEN ? AND ?", int64(100), int64(200)).
					GroupBy("properties.id").
					Having("AVG(property_reviews.rating) >= ?", 3.5).
					OrderBy("cost_per_night").
					Limit(2)
			},
			wantSQL: head + " WHERE properties.city ILIKE $1 AND properties.owner_id = $2" +
				" AND cost_per_night BETWEEN $3 AND $4 GROUP BY properties.id" +
				" HAVING AVG(property_reviews.rating) >= $5 ORDER BY cost_per_night LIMIT $6",
			wantArgs: []any{"%a%", int64(7), int64(100), int64(200), 3.5, 2},
		},
		{
			name:    "base only",
			build:   func(b *Builder) {},
			wantSQL: head,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(base)
			tt.build(b)

			sql, args, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuild_MultipleHaving(t *testing.T) {
	sql, args, err := New("SELECT guest_id FROM reservations").
		GroupBy("guest_id").
		Having("COUNT(*) > ?", 1).
		Having("MAX(end_date) < ?", "2024-01-01").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "SELECT guest_id FROM reservations GROUP BY guest_id HAVING COUNT(*) > $1 AND MAX(end_date) < $2", sql)
	assert.Equal(t, []any{1, "2024-01-01"}, args)
}

func TestBuild_ArgCountMismatch(t *testing.T) {
	_, _, err := New("SELECT * FROM users").Where("email = ?").Build()
	assert.ErrorIs(t, err, ErrArgCount)

	_, _, err = New("SELECT * FROM users").Having("COUNT(*) > ?", 1, 2).Build()
	assert.ErrorIs(t, err, ErrArgCount)
}

func TestBuild_Repeatable(t *testing.T) {
	b := New("SELECT * FROM users").Where("id = ?", int64(1)).Limit(1)

	first, firstArgs, err := b.Build()
	require.NoError(t, err)
	second, secondArgs, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstArgs, secondArgs)
}

func TestContains(t *testing.T) {
	tests := map[string]string{
		"Vancouver": "%Vancouver%",
		"":          "%%",
		"50%":       `%50\%%`,
		"a_b":       `%a\_b%`,
		`c:\d`:      `%c:\\d%`,
	}
	for in, want := range tests {
		assert.Equal(t, want, Contains(in), in)
	}
}
