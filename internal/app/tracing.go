package app

import (
	"context"

	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Trace starts a New Relic transaction named name and stores it in ctx, so
// the nrpgx5 tracer records the queries run under it as datastore segments.
// The returned func notices a non-nil error and ends the transaction.
// Without New Relic both are no-ops.
func (a *App) Trace(ctx context.Context, name string) (context.Context, func(error)) {
	nrApp := a.LoggerService.GetApplication()
	if nrApp == nil {
		return ctx, func(error) {}
	}

	txn := nrApp.StartTransaction(name)
	if a.Config != nil {
		txn.AddAttribute("environment", a.Config.Primary.Env)
	}

	return newrelic.NewContext(ctx, txn), func(err error) {
		if err != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
		}
		txn.End()
	}
}
