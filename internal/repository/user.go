package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	getUserByEmail = `SELECT id, name, email, password FROM users WHERE email = $1`
	getUserByID    = `SELECT id, name, email, password FROM users WHERE id = $1`
	createUser     = `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, name, email, password`
)

type UserRepository struct {
	db     DBTX
	logger *zerolog.Logger
}

func NewUserRepository(db DBTX, logger *zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := r.getOne(ctx, getUserByEmail, email)
	if err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Str("email", email).Msg("failed to get user by email")
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := r.getOne(ctx, getUserByID, id)
	if err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Int64("user_id", id).Msg("failed to get user by id")
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}

func (r *UserRepository) getOne(ctx context.Context, sql string, arg any) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user and returns the stored row. The password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx, createUser, name, email, passwordHash).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		r.logger.Error().Stack().Err(errors.WithStack(err)).Str("email", email).Msg("failed to create user")
		return nil, sqlerr.HandleError(err)
	}
	return &u, nil
}
