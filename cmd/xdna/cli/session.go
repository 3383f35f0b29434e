package cli

import (
	"context"
	"fmt"
)

// SessionCmd groups operations on every context of the session.
type SessionCmd struct {
	Close   SessionCloseCmd   `cmd:"" help:"Destroy every context and free every buffer of the session."`
	Suspend SessionSuspendCmd `cmd:"" help:"Stop dispatch on every context of the session."`
	Resume  SessionResumeCmd  `cmd:"" help:"Restart dispatch on suspended contexts."`
}

// SessionCloseCmd ends the session.
type SessionCloseCmd struct{}

// Run executes the session close command.
func (c *SessionCloseCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	contexts, buffers, err := b.CloseSession(ctx)
	if err != nil {
		return err
	}
	return cli.PrintOutf("Closed session %s: %d contexts, %d buffers released\n", b.ID(), contexts, buffers)
}

// SessionSuspendCmd suspends the session's contexts.
type SessionSuspendCmd struct{}

// Run executes the session suspend command.
func (c *SessionSuspendCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	return b.Suspend(ctx)
}

// SessionResumeCmd resumes the session's contexts.
type SessionResumeCmd struct{}

// Run executes the session resume command.
func (c *SessionResumeCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	return b.Resume(ctx)
}
