package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/client"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
)

// ExecCmd runs a batch of commands on an in-process device. It creates
// a context with one compute unit per --cus, submits --count START_CU
// commands round-robin over them and reports the outcome. The runtime
// lock is held for the duration, so it waits for a running daemon.
type ExecCmd struct {
	OutputFlags
	Columns uint32        `help:"Columns to reserve." default:"1"`
	CUs     int           `name:"cus" help:"Compute units to configure." default:"1"`
	Count   int           `help:"Commands to submit." default:"4"`
	Args    []uint32      `name:"arg" help:"Kernel argument word for every command (can be repeated)."`
	Latency time.Duration `help:"Simulated execution latency; overrides backend.latency."`
	Timeout time.Duration `help:"Per-command wait timeout." default:"5s"`
}

// Run executes the exec command.
func (c *ExecCmd) Run(cli *CLI, ctx context.Context) error {
	if c.CUs < 1 || c.CUs > command.CUsPerMask || c.Count < 0 {
		return fmt.Errorf("--cus must be in [1, %d] and --count must not be negative", command.CUsPerMask)
	}
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	if c.Latency > 0 {
		cfg.Backend.Latency.Duration = c.Latency
	}
	logger, err := cli.Logger()
	if err != nil {
		return err
	}

	b, err := client.Open(ctx,
		client.WithRuntimeDir(cli.RuntimeDir),
		client.WithConfig(cfg),
		client.WithLogger(logger),
		client.WithClientID(xdna.ClientID(cli.ClientID)),
	)
	if err != nil {
		return err
	}
	defer b.Close()

	jobs, runErr := c.run(ctx, b)
	_, _, closeErr := b.CloseSession(context.WithoutCancel(ctx))
	if err := errors.Join(runErr, closeErr); err != nil {
		return err
	}

	output, err := FormatJobs(jobs, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}

func (c *ExecCmd) run(ctx context.Context, b client.Client) ([]job.Info, error) {
	spec := xdna.ContextSpec{Name: "exec", Columns: c.Columns}
	for range c.CUs {
		pdi, err := b.CreateBuffer(ctx, 64)
		if err != nil {
			return nil, err
		}
		spec.CUs = append(spec.CUs, xdna.CUConfig{BO: pdi})
	}
	hw, err := b.CreateContext(ctx, spec)
	if err != nil {
		return nil, err
	}

	seqs := make([]uint64, 0, c.Count)
	for i := range c.Count {
		cmd, err := command.New(command.CUMask(i%c.CUs), command.StartCU{Args: c.Args})
		if err != nil {
			return nil, err
		}
		h, err := client.Upload(ctx, b, cmd)
		if err != nil {
			return nil, err
		}
		seq, err := b.Submit(ctx, hw.ID, h, nil)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	for _, seq := range seqs {
		if _, err := b.Wait(ctx, hw.ID, seq, c.Timeout); err != nil {
			return nil, err
		}
	}
	return b.Jobs(ctx, hw.ID, false)
}
