package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/frobware/go-xdna/lock"
	"github.com/frobware/go-xdna/server"
)

// GCCmd removes context records a previous daemon left in the store.
// It needs the runtime lock, so it fails while a daemon is running.
type GCCmd struct {
	LockTimeout time.Duration `name:"lock-timeout" help:"How long to wait for the runtime lock." default:"2s"`
}

// Run executes the gc command.
func (c *GCCmd) Run(cli *CLI, ctx context.Context) error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := cli.Logger()
	if err != nil {
		return err
	}
	dirs, err := cli.RuntimeDirs()
	if err != nil {
		return err
	}
	if err := dirs.EnsureDirectories(); err != nil {
		return err
	}

	lockCtx, cancel := context.WithTimeout(ctx, c.LockTimeout)
	defer cancel()

	var stale int
	err = lock.Run(lockCtx, dirs.Lock(), func(context.Context) error {
		rt, err := server.NewRuntime(ctx, dirs, cfg, logger)
		if err != nil {
			return err
		}
		stale = rt.Stale
		return rt.Close()
	})
	if err != nil {
		return fmt.Errorf("gc: %w", err)
	}

	if stale == 0 {
		return cli.PrintOut("Nothing to clean up.\n")
	}
	return cli.PrintOutf("Removed %d stale contexts.\n", stale)
}
