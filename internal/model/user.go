// Package model holds the records read from the store and the inputs
// accepted by the services.
package model

import "github.com/deppfellow/lightbnb/internal/validation"

// User is a row of the users table. Password holds the bcrypt hash.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
}

// NewUser is the registration input. Password is the plaintext secret.
type NewUser struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (u *NewUser) Validate() error {
	return validation.Struct(u)
}

// Credentials is the login input.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	return validation.Struct(c)
}
