package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/frobware/go-xdna/client"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
)

// PacketFlags describe a command packet to build and upload.
type PacketFlags struct {
	Opcode      string         `name:"opcode" help:"Opcode: start-cu, start-dpu or cmd-chain." default:"start-cu"`
	CU          int            `name:"cu" help:"Compute unit index the command runs on." default:"0"`
	Args        []uint32       `name:"arg" help:"Kernel argument word (can be repeated)."`
	Instr       uint64         `name:"instr" help:"START_DPU instruction buffer address."`
	InstrSize   uint32         `name:"instr-size" help:"START_DPU instruction buffer size."`
	Chain       []BufferHandle `name:"chain" help:"Command buffer executed by a cmd-chain packet (can be repeated)."`
	SubmitIndex uint32         `name:"submit-index" help:"First chain entry to execute." default:"0"`
}

// Build encodes the packet the flags describe.
func (f *PacketFlags) Build() (command.Command, error) {
	op, err := command.ParseOpcode(f.Opcode)
	if err != nil {
		return command.Command{}, err
	}
	if f.CU < 0 || f.CU >= command.CUsPerMask {
		return command.Command{}, fmt.Errorf("compute unit index %d out of range [0, %d)", f.CU, command.CUsPerMask)
	}
	switch op {
	case command.OpStartCU:
		return command.New(command.CUMask(f.CU), command.StartCU{Args: f.Args})
	case command.OpStartDPU:
		return command.New(command.CUMask(f.CU), command.StartDPU{
			InstructionBuffer:     f.Instr,
			InstructionBufferSize: f.InstrSize,
			Args:                  f.Args,
		})
	default:
		if len(f.Chain) == 0 {
			return command.Command{}, fmt.Errorf("cmd-chain needs at least one --chain buffer")
		}
		refs := make([]uint64, len(f.Chain))
		for i, h := range f.Chain {
			refs[i] = uint64(h.Value)
		}
		return command.NewChain(f.SubmitIndex, refs)
	}
}

// SubmitCmd submits a command to a context. Without --command the
// packet is built from the packet flags and uploaded first.
type SubmitCmd struct {
	PacketFlags
	Context ContextID      `arg:"" help:"Context ID."`
	Command *BufferHandle  `name:"command" help:"Submit this existing command buffer instead of building one."`
	BOs     []BufferHandle `name:"bo" help:"Buffer the command references (can be repeated)."`
	Wait    bool           `short:"w" help:"Wait for the command to finish."`
	Timeout *time.Duration `help:"Wait timeout; defaults to jobs.default_wait_timeout."`
}

// Run executes the submit command.
func (c *SubmitCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	handle := c.Command
	if handle == nil {
		cmd, err := c.Build()
		if err != nil {
			return err
		}
		h, err := client.Upload(ctx, b, cmd)
		if err != nil {
			return err
		}
		handle = &BufferHandle{Value: h}
	}

	seq, err := b.Submit(ctx, c.Context.Value, handle.Value, bufferHandles(c.BOs))
	if err != nil {
		return err
	}
	if !c.Wait {
		return cli.PrintOutf("seq=%d command=%d\n", seq, handle.Value)
	}

	timeout, err := cli.waitTimeout(c.Timeout)
	if err != nil {
		return err
	}
	state, err := b.Wait(ctx, c.Context.Value, seq, timeout)
	if err != nil {
		return err
	}
	return cli.PrintOutf("seq=%d command=%d state=%s\n", seq, handle.Value, state)
}

// waitTimeout resolves an optional --timeout against the config
// default. A negative value waits until interrupted.
func (c *CLI) waitTimeout(flag *time.Duration) (time.Duration, error) {
	if flag != nil {
		if *flag < 0 {
			return job.NoTimeout, nil
		}
		return *flag, nil
	}
	cfg, err := c.LoadConfig()
	if err != nil {
		return 0, err
	}
	return cfg.Jobs.DefaultWaitTimeout.Duration, nil
}

// WaitCmd waits for a submitted command to reach a terminal state.
type WaitCmd struct {
	Context ContextID      `arg:"" help:"Context ID."`
	Seq     uint64         `arg:"" help:"Sequence number returned by submit."`
	Timeout *time.Duration `help:"How long to wait; 0 polls, negative waits until interrupted. Defaults to jobs.default_wait_timeout."`
}

// Run executes the wait command.
func (c *WaitCmd) Run(cli *CLI, ctx context.Context) error {
	timeout, err := cli.waitTimeout(c.Timeout)
	if err != nil {
		return err
	}

	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	state, err := b.Wait(ctx, c.Context.Value, c.Seq, timeout)
	if err != nil {
		return err
	}
	return cli.PrintOutf("%s\n", state)
}

// CancelCmd aborts a submitted command.
type CancelCmd struct {
	Context ContextID `arg:"" help:"Context ID."`
	Seq     uint64    `arg:"" help:"Sequence number returned by submit."`
}

// Run executes the cancel command.
func (c *CancelCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	state, err := b.Cancel(ctx, c.Context.Value, c.Seq)
	if err != nil {
		return err
	}
	return cli.PrintOutf("%s\n", state)
}
