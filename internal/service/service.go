// Package service contains the business logic.
//
// It sits between the callers (the CLI, or any embedding
// application) and the repository layer. It validates input,
// applies defaults, and calls repository methods to interact
// with the data.
package service

import (
	"fmt"

	"github.com/deppfellow/lightbnb/internal/errs"
)

// DefaultLimit caps list and search results when the caller passes 0.
const DefaultLimit = 10

// resolveLimit applies DefaultLimit to 0 and rejects negative limits.
func resolveLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultLimit, nil
	case limit < 0:
		return 0, errs.NewInvalidError("Validation failed", true, nil, []errs.FieldError{
			{Field: "limit", Error: fmt.Sprintf("must be at least 0, got %d", limit)},
		})
	}
	return limit, nil
}

func invalidID(field string) error {
	return errs.NewInvalidError("Validation failed", true, nil, []errs.FieldError{
		{Field: field, Error: "must be greater than 0"},
	})
}
