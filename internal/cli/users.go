package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/spf13/cobra"
)

var userHeaders = []string{"ID", "Name", "Email"}

func userRows(users ...*model.User) [][]string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{strconv.FormatInt(u.ID, 10), u.Name, u.Email})
	}
	return rows
}

func newUsersCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Look up, create and authenticate users",
	}

	cmd.AddCommand(newUsersGetCommand(opts))
	cmd.AddCommand(newUsersCreateCommand(opts))
	cmd.AddCommand(newUsersLoginCommand(opts))
	return cmd
}

func newUsersGetCommand(opts *rootOptions) *cobra.Command {
	var email string
	var id int64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one user by --email or --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byEmail, byID := cmd.Flags().Changed("email"), cmd.Flags().Changed("id")
			if byEmail == byID {
				return usageError(errors.New("exactly one of --email or --id is required"))
			}

			return opts.exec(cmd, func(ctx context.Context, b *Backend, r *renderer) error {
				var user *model.User
				var err error
				if byEmail {
					user, err = b.Users.GetByEmail(ctx, email)
				} else {
					user, err = b.Users.GetByID(ctx, id)
				}
				if err != nil {
					return err
				}
				if user == nil {
					return errs.NewNotFoundError("User not found", true, nil)
				}
				return r.render(user, userHeaders, userRows(user))
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "User email")
	cmd.Flags().Int64Var(&id, "id", 0, "User id")
	return cmd
}

func newUsersCreateCommand(opts *rootOptions) *cobra.Command {
	var in model.NewUser

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a user; the password is stored as a bcrypt hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.exec(cmd, func(ctx context.Context, b *Backend, r *renderer) error {
				user, err := b.Users.Register(ctx, in)
				if err != nil {
					return err
				}
				r.success("created user %d", user.ID)
				return r.render(user, userHeaders, userRows(user))
			})
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "Plaintext password (at least 8 characters)")
	for _, name := range []string{"name", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newUsersLoginCommand(opts *rootOptions) *cobra.Command {
	var creds model.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check an email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.exec(cmd, func(ctx context.Context, b *Backend, r *renderer) error {
				user, err := b.Users.Authenticate(ctx, creds)
				if err != nil {
					return err
				}
				r.success("authenticated %s", user.Email)
				return r.render(user, userHeaders, userRows(user))
			})
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Plaintext password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
