// Package cli implements the lightbnb command line tool.
//
// Each command is a thin caller of the service layer: it turns flags
// into service inputs, runs one operation under a timeout, and renders
// the result as a table or JSON.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/health"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/spf13/cobra"
)

type UserAPI interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Register(ctx context.Context, in model.NewUser) (*model.User, error)
	Authenticate(ctx context.Context, creds model.Credentials) (*model.User, error)
}

type ReservationAPI interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error)
}

type PropertyAPI interface {
	Search(ctx context.Context, filter model.PropertyFilter, limit int) ([]model.PropertySearchResult, error)
	Create(ctx context.Context, in model.NewProperty) (*model.Property, error)
}

type HealthAPI interface {
	Check(ctx context.Context) health.Report
}

// Backend is what the commands run against. Close is called once the command finishes.
type Backend struct {
	Users        UserAPI
	Reservations ReservationAPI
	Properties   PropertyAPI
	Health       HealthAPI
	Close        func() error

	// Trace, when set, wraps each command in a named trace. end receives the command's error.
	Trace func(ctx context.Context, name string) (traced context.Context, end func(error))
}

// Opener builds the Backend. It is called only once a command's flags are valid,
// so --help and usage errors work without a database.
type Opener func() (*Backend, error)

type rootOptions struct {
	open    Opener
	output  string
	timeout time.Duration
}

// runError carries an error raised while a command ran, as opposed to one
// raised by cobra while parsing the command line.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// openError is returned by exec when the Backend could not be opened.
type openError struct {
	err error
}

func (e *openError) Error() string { return e.err.Error() }
func (e *openError) Unwrap() error { return e.err }

// usageError reports a bad command line as an invalid input error.
func usageError(err error) error {
	return errs.NewInvalidError(err.Error(), true, nil, nil)
}

// Execute runs the command tree. Errors from a command's work are returned
// as they are; anything else (unknown command or flag, missing required
// flag, bad arguments) is returned as an invalid input error.
func Execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var runErr *runError
	if errors.As(err, &runErr) {
		var openErr *openError
		if errors.As(runErr.err, &openErr) {
			return openErr.err
		}
		return runErr.err
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}
	return usageError(err)
}

// exec opens the Backend, runs fn under --timeout and closes the Backend.
func (o *rootOptions) exec(cmd *cobra.Command, fn func(ctx context.Context, b *Backend, r *renderer) error) (err error) {
	defer func() {
		if err != nil {
			err = &runError{err: err}
		}
	}()

	backend, err := o.open()
	if err != nil {
		return &openError{err: err}
	}
	defer func() {
		if backend.Close == nil {
			return
		}
		if closeErr := backend.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	if backend.Trace != nil {
		var end func(error)
		ctx, end = backend.Trace(ctx, cmd.CommandPath())
		defer func() { end(err) }()
	}

	return fn(ctx, backend, &renderer{out: cmd.OutOrStdout(), format: o.output})
}

// NewRootCommand creates the lightbnb command tree.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &rootOptions{open: open}

	cmd := &cobra.Command{
		Use:           "lightbnb",
		Short:         "Query and update the LightBnB database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != formatTable && opts.output != formatJSON {
				return fmt.Errorf("invalid --output %q (must be %s or %s)", opts.output, formatTable, formatJSON)
			}
			if opts.timeout <= 0 {
				return fmt.Errorf("--timeout must be positive")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatTable, "Output format: table or json")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Deadline for the database operation")

	cmd.AddCommand(newUsersCommand(opts))
	cmd.AddCommand(newReservationsCommand(opts))
	cmd.AddCommand(newPropertiesCommand(opts))
	cmd.AddCommand(newHealthCommand(opts))

	return cmd
}
