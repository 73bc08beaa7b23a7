package cli

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/deppfellow/lightbnb/internal/health"
	"github.com/spf13/cobra"
)

var errUnhealthy = errors.New("one or more health checks failed")

var healthHeaders = []string{"Check", "Status", "Response time", "Error"}

// startupReport describes a Backend that could not be opened, e.g. because
// the database refused the initial ping.
func startupReport(err error) health.Report {
	return health.Report{
		Status:    health.StatusUnhealthy,
		Timestamp: time.Now().UTC(),
		Checks: map[string]health.Check{
			"startup": {Status: health.StatusUnhealthy, Error: err.Error()},
		},
	}
}

func renderReport(r *renderer, report health.Report) error {
	names := make([]string, 0, len(report.Checks))
	for name := range report.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		check := report.Checks[name]
		rows = append(rows, []string{name, check.Status, check.ResponseTime, check.Error})
	}

	if err := r.render(report, healthHeaders, rows); err != nil {
		return err
	}
	if !report.Healthy() {
		return errUnhealthy
	}
	r.success("%s (%s)", report.Status, report.Environment)
	return nil
}

func newHealthCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the database is reachable",
		Long: `Check that the database is reachable.

A failure to start (bad configuration, or a database that refuses the
initial connection) is reported as an unhealthy "startup" check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := opts.exec(cmd, func(ctx context.Context, b *Backend, r *renderer) error {
				return renderReport(r, b.Health.Check(ctx))
			})

			var openErr *openError
			if !errors.As(err, &openErr) {
				return err
			}

			r := &renderer{out: cmd.OutOrStdout(), format: opts.output}
			if renderErr := renderReport(r, startupReport(openErr.err)); !errors.Is(renderErr, errUnhealthy) {
				return &runError{err: renderErr}
			}
			return &runError{err: errUnhealthy}
		},
	}
}
