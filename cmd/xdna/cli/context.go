package cli

import (
	"context"
	"fmt"

	"github.com/frobware/go-xdna"
)

// CtxCmd groups hardware context operations.
type CtxCmd struct {
	Create  CtxCreateCmd  `cmd:"" help:"Create a hardware context."`
	Config  CtxConfigCmd  `cmd:"" help:"Replace the compute unit table of a context."`
	Destroy CtxDestroyCmd `cmd:"" help:"Destroy a hardware context."`
	List    CtxListCmd    `cmd:"" default:"withargs" help:"List hardware contexts of the session."`
	Get     CtxGetCmd     `cmd:"" help:"Show one hardware context."`
}

// CtxCreateCmd creates a hardware context.
type CtxCreateCmd struct {
	OutputFlags
	Name       string   `help:"Context name."`
	Columns    uint32   `help:"Number of contiguous columns to reserve." default:"1"`
	ColumnList []uint32 `name:"column-list" help:"Allowed start columns (comma separated)."`
	NumTiles   uint32   `name:"num-tiles" help:"Tiles requested."`
	MemSize    uint32   `name:"mem-size" help:"Device memory requested, in bytes."`
	MaxOpc     uint32   `name:"max-opc" help:"Maximum operations per cycle."`
	Priority   uint32   `help:"QoS priority."`
	CUs        []CUSpec `name:"cu" help:"Compute unit as HANDLE[:FUNCTION] (can be repeated)."`
}

// Run executes the ctx create command.
func (c *CtxCreateCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	hw, err := b.CreateContext(ctx, xdna.ContextSpec{
		Name:       c.Name,
		Columns:    c.Columns,
		ColumnList: c.ColumnList,
		NumTiles:   c.NumTiles,
		MemSize:    c.MemSize,
		MaxOpc:     c.MaxOpc,
		QoS:        xdna.QoS{Priority: c.Priority},
		CUs:        cuConfigs(c.CUs),
	})
	if err != nil {
		return err
	}

	output, err := FormatContext(hw, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}

// CtxConfigCmd replaces the CU table of a READY context.
type CtxConfigCmd struct {
	Context ContextID `arg:"" help:"Context ID."`
	CUs     []CUSpec  `name:"cu" required:"" help:"Compute unit as HANDLE[:FUNCTION] (can be repeated)."`
}

// Run executes the ctx config command.
func (c *CtxConfigCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	if err := b.ConfigContext(ctx, c.Context.Value, cuConfigs(c.CUs)); err != nil {
		return err
	}
	return cli.PrintOutf("Configured %d compute units on context %d\n", len(c.CUs), c.Context.Value)
}

// CtxDestroyCmd destroys a hardware context.
type CtxDestroyCmd struct {
	Context ContextID `arg:"" help:"Context ID."`
	Force   bool      `short:"f" help:"Abort outstanding commands instead of refusing."`
}

// Run executes the ctx destroy command.
func (c *CtxDestroyCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	if err := b.DestroyContext(ctx, c.Context.Value, c.Force); err != nil {
		return err
	}
	return cli.PrintOutf("Destroyed context %d\n", c.Context.Value)
}

// CtxListCmd lists the session's hardware contexts.
type CtxListCmd struct {
	OutputFlags
}

// Run executes the ctx list command.
func (c *CtxListCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	contexts, err := b.ListContexts(ctx)
	if err != nil {
		return err
	}
	if len(contexts) == 0 && c.Output != OutputFormatJSON {
		return cli.PrintOut("No hardware contexts\n")
	}

	output, err := FormatContexts(contexts, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}

// CtxGetCmd shows one hardware context.
type CtxGetCmd struct {
	OutputFlags
	Context ContextID `arg:"" help:"Context ID."`
}

// Run executes the ctx get command.
func (c *CtxGetCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	hw, err := b.GetContext(ctx, c.Context.Value)
	if err != nil {
		return err
	}
	output, err := FormatContext(hw, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}
