package cli

import (
	"context"
	"fmt"

	"github.com/frobware/go-xdna/server"
)

// ServeCmd starts the gRPC daemon.
type ServeCmd struct {
	TCPAddress     string  `name:"tcp-address" help:"Also serve gRPC on this TCP address."`
	MetricsAddress *string `name:"metrics-address" help:"Prometheus listen address; empty disables. Overrides the config file."`
}

// Run executes the serve command.
func (c *ServeCmd) Run(cli *CLI, ctx context.Context) error {
	appConfig, err := cli.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.MetricsAddress != nil {
		appConfig.Server.MetricsAddress = *c.MetricsAddress
	}

	logger, err := cli.LoggerFromConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	dirs, err := cli.RuntimeDirs()
	if err != nil {
		return err
	}

	return server.Run(ctx, server.RunConfig{
		Dirs:       dirs,
		TCPAddress: c.TCPAddress,
		Config:     appConfig,
		Logger:     logger,
	})
}
