package cli

import (
	"context"
	"strconv"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/spf13/cobra"
)

const dateFormat = "2006-01-02"

func newReservationsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List reservations",
	}
	cmd.AddCommand(newReservationsListCommand(opts))
	return cmd
}

func newReservationsListCommand(opts *rootOptions) *cobra.Command {
	var guestID int64
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a guest's reservations, earliest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.exec(cmd, func(ctx context.Context, b *Backend, r *renderer) error {
				reservations, err := b.Reservations.ListForGuest(ctx, guestID, limit)
				if err != nil {
					return err
				}
				return r.render(reservations, reservationHeaders, reservationRows(reservations))
			})
		},
	}

	cmd.Flags().Int64Var(&guestID, "guest", 0, "Guest user id")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows (0 means 10)")
	_ = cmd.MarkFlagRequired("guest")
	return cmd
}

var reservationHeaders = []string{"ID", "Property", "City", "Start", "End", "Cost/night", "Avg rating"}

func reservationRows(reservations []model.GuestReservation) [][]string {
	rows := make([][]string, 0, len(reservations))
	for _, gr := range reservations {
		rows = append(rows, []string{
			strconv.FormatInt(gr.Reservation.ID, 10),
			gr.Property.Title,
			gr.Property.City,
			gr.Reservation.StartDate.Format(dateFormat),
			gr.Reservation.EndDate.Format(dateFormat),
			money(gr.Property.CostPerNight),
			rating(gr.AverageRating),
		})
	}
	return rows
}
