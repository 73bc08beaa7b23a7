package cli

import (
	"context"
	"strconv"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/spf13/cobra"
)

func newPropertiesCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Search and create properties",
	}
	cmd.AddCommand(newPropertiesSearchCommand(opts))
	cmd.AddCommand(newPropertiesCreateCommand(opts))
	return cmd
}

type searchFlags struct {
	city      string
	owner     int64
	minPrice  float64
	maxPrice  float64
	minRating float64
	limit     int
}

// filter builds a PropertyFilter holding only the flags that were set.
func (f *searchFlags) filter(cmd *cobra.Command) model.PropertyFilter {
	flags := cmd.Flags()

	var filter model.PropertyFilter
	if flags.Changed("city") {
		filter.City = &f.city
	}
	if flags.Changed("owner") {
		filter.OwnerID = &f.owner
	}
	if flags.Changed("min-price") {
		filter.MinimumPricePerNight = &f.minPrice
	}
	if flags.Changed("max-price") {
		filter.MaximumPricePerNight = &f.maxPrice
	}
	if flags.Changed("min-rating") {
		filter.MinimumRating = &f.minRating
	}
	return filter
}

func newPropertiesSearchCommand(opts *rootOptions) *cobra.Command {
	f := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties, cheapest first",
		Example: `  lightbnb properties search --city Vancouver --min-rating 4 --limit 5
  lightbnb properties search --min-price 50 --max-price 150 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := f.filter(cmd)

			return opts.exec(cmd, func(ctx context.Context, b *Backend, r *renderer) error {
				results, err := b.Properties.Search(ctx, filter, f.limit)
				if err != nil {
					return err
				}
				return r.render(results, propertyHeaders, propertyRows(results))
			})
		},
	}

	cmd.Flags().StringVar(&f.city, "city", "", "City contains (case-insensitive)")
	cmd.Flags().Int64Var(&f.owner, "owner", 0, "Owner user id")
	cmd.Flags().Float64Var(&f.minPrice, "min-price", 0, "Minimum price per night, requires --max-price")
	cmd.Flags().Float64Var(&f.maxPrice, "max-price", 0, "Maximum price per night, requires --min-price")
	cmd.Flags().Float64Var(&f.minRating, "min-rating", 0, "Minimum average rating (0-5)")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Maximum rows (0 means 10)")
	return cmd
}

func newPropertiesCreateCommand(opts *rootOptions) *cobra.Command {
	var in model.NewProperty
	var price float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a property listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.CostPerNight = model.ToCents(price)

			return opts.exec(cmd, func(ctx context.Context, b *Backend, r *renderer) error {
				property, err := b.Properties.Create(ctx, in)
				if err != nil {
					return err
				}
				r.success("created property %d", property.ID)
				result := []model.PropertySearchResult{{Property: *property}}
				return r.render(property, propertyHeaders, propertyRows(result))
			})
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&in.OwnerID, "owner", 0, "Owner user id")
	flags.StringVar(&in.Title, "title", "", "Title")
	flags.StringVar(&in.Description, "description", "", "Description")
	flags.StringVar(&in.ThumbnailPhotoURL, "thumbnail", "", "Thumbnail photo URL")
	flags.StringVar(&in.CoverPhotoURL, "cover", "", "Cover photo URL")
	flags.Float64Var(&price, "price", 0, "Cost per night, e.g. 93.61")
	flags.StringVar(&in.Street, "street", "", "Street")
	flags.StringVar(&in.City, "city", "", "City")
	flags.StringVar(&in.Province, "province", "", "Province")
	flags.StringVar(&in.PostCode, "post-code", "", "Post code")
	flags.StringVar(&in.Country, "country", "", "Country")
	flags.Int32Var(&in.ParkingSpaces, "parking", 0, "Parking spaces")
	flags.Int32Var(&in.NumberOfBathrooms, "bathrooms", 0, "Number of bathrooms")
	flags.Int32Var(&in.NumberOfBedrooms, "bedrooms", 0, "Number of bedrooms")
	for _, name := range []string{"owner", "title", "price", "street", "city", "province", "post-code", "country"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

var propertyHeaders = []string{"ID", "Title", "City", "Owner", "Cost/night", "Beds", "Baths", "Parking", "Avg rating"}

func propertyRows(results []model.PropertySearchResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, p := range results {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Title,
			p.City,
			strconv.FormatInt(p.OwnerID, 10),
			money(p.CostPerNight),
			strconv.Itoa(int(p.NumberOfBedrooms)),
			strconv.Itoa(int(p.NumberOfBathrooms)),
			strconv.Itoa(int(p.ParkingSpaces)),
			rating(p.AverageRating),
		})
	}
	return rows
}
