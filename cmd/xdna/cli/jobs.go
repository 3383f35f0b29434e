package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
)

// JobsCmd groups job operations on one context.
type JobsCmd struct {
	List    JobsListCmd    `cmd:"" default:"withargs" help:"List tracked jobs of a context."`
	Reclaim JobsReclaimCmd `cmd:"" help:"Release finished jobs below a sequence number."`
}

// JobsListCmd lists the jobs of a context.
type JobsListCmd struct {
	OutputFlags
	Context ContextID `arg:"" help:"Context ID."`
	History bool      `help:"List persisted history instead of tracked jobs."`
	States  []string  `name:"state" help:"Only list jobs in this state, e.g. running or completed (can be repeated)."`
}

// Run executes the jobs list command.
func (c *JobsListCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	jobs, err := b.Jobs(ctx, c.Context.Value, c.History)
	if err != nil {
		return err
	}
	if jobs, err = filterJobs(jobs, c.States); err != nil {
		return err
	}
	if len(jobs) == 0 && c.Output != OutputFormatJSON {
		return cli.PrintOutf("No jobs on context %d\n", c.Context.Value)
	}
	output, err := FormatJobs(jobs, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}

// JobsReclaimCmd releases finished jobs so their buffers unpin.
type JobsReclaimCmd struct {
	Context ContextID `arg:"" help:"Context ID."`
	UpTo    uint64    `arg:"" help:"Reclaim finished jobs below this sequence number."`
}

// Run executes the jobs reclaim command.
func (c *JobsReclaimCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	low, err := b.Reclaim(ctx, c.Context.Value, c.UpTo)
	if err != nil {
		return err
	}
	return cli.PrintOutf("Low-water mark of context %d is now %d\n", c.Context.Value, low)
}

// filterJobs keeps the jobs whose state is named in states. No states
// keeps everything.
func filterJobs(jobs []job.Info, states []string) ([]job.Info, error) {
	if len(states) == 0 {
		return jobs, nil
	}
	want := make([]command.State, 0, len(states))
	for _, name := range states {
		st, err := command.ParseState(name)
		if err != nil {
			return nil, err
		}
		want = append(want, st)
	}
	var out []job.Info
	for _, j := range jobs {
		if slices.Contains(want, j.State) {
			out = append(out, j)
		}
	}
	return out, nil
}
