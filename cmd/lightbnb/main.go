// Package main is the entry point for the lightbnb CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/lightbnb/internal/app"
	"github.com/deppfellow/lightbnb/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := cli.NewRootCommand(open)
	err := cli.Execute(ctx, root)
	stop()

	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

// open bootstraps the application from the environment.
func open() (*cli.Backend, error) {
	a, err := app.Bootstrap()
	if err != nil {
		return nil, err
	}

	return &cli.Backend{
		Users:        a.Services.Users,
		Reservations: a.Services.Reservations,
		Properties:   a.Services.Properties,
		Health:       a.Health,
		Close:        a.Close,
		Trace:        a.Trace,
	}, nil
}
