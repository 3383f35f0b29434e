package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// BufferCmd groups buffer object operations.
type BufferCmd struct {
	Create BufferCreateCmd `cmd:"" help:"Allocate a buffer object."`
	Write  BufferWriteCmd  `cmd:"" help:"Write bytes into a buffer object."`
	Read   BufferReadCmd   `cmd:"" help:"Dump bytes of a buffer object."`
	Free   BufferFreeCmd   `cmd:"" help:"Free a buffer object."`
	List   BufferListCmd   `cmd:"" default:"withargs" help:"List the session's buffer objects."`
}

// BufferCreateCmd allocates a buffer object.
type BufferCreateCmd struct {
	Size int `arg:"" help:"Size in bytes."`
	// File initialises the buffer from a file; Size is raised to fit.
	File string `name:"file" type:"existingfile" help:"Initialise from this file."`
}

// Run executes the buffer create command.
func (c *BufferCreateCmd) Run(cli *CLI, ctx context.Context) error {
	var data []byte
	if c.File != "" {
		var err error
		if data, err = os.ReadFile(c.File); err != nil {
			return err
		}
	}
	size := max(c.Size, len(data))

	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	h, err := b.CreateBuffer(ctx, size)
	if err != nil {
		return err
	}
	if len(data) > 0 {
		if err := b.WriteBuffer(ctx, h, 0, data); err != nil {
			_ = b.FreeBuffer(ctx, h)
			return fmt.Errorf("initialise buffer: %w", err)
		}
	}
	return cli.PrintOutf("%d\n", h)
}

// BufferWriteCmd writes bytes into a buffer object.
type BufferWriteCmd struct {
	Handle BufferHandle `arg:"" help:"Buffer handle."`
	Offset int          `help:"Byte offset to write at." default:"0"`
	Hex    string       `name:"hex" xor:"source" help:"Bytes to write, hex encoded."`
	File   string       `name:"file" xor:"source" type:"existingfile" help:"File whose contents to write."`
}

// Run executes the buffer write command.
func (c *BufferWriteCmd) Run(cli *CLI, ctx context.Context) error {
	var data []byte
	var err error
	switch {
	case c.File != "":
		data, err = os.ReadFile(c.File)
	case c.Hex != "":
		data, err = hex.DecodeString(strings.TrimPrefix(c.Hex, "0x"))
	default:
		return fmt.Errorf("one of --hex or --file is required")
	}
	if err != nil {
		return err
	}

	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	if err := b.WriteBuffer(ctx, c.Handle.Value, c.Offset, data); err != nil {
		return err
	}
	return cli.PrintOutf("Wrote %d bytes to buffer %d at offset %d\n", len(data), c.Handle.Value, c.Offset)
}

// BufferReadCmd dumps bytes of a buffer object.
type BufferReadCmd struct {
	Handle BufferHandle `arg:"" help:"Buffer handle."`
	Offset int          `help:"Byte offset to read from." default:"0"`
	Length int          `help:"Bytes to read; negative reads to the end." default:"-1"`
}

// Run executes the buffer read command.
func (c *BufferReadCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	data, err := b.ReadBuffer(ctx, c.Handle.Value, c.Offset, c.Length)
	if err != nil {
		return err
	}
	return cli.PrintOut(hex.Dump(data))
}

// BufferFreeCmd frees a buffer object.
type BufferFreeCmd struct {
	Handle BufferHandle `arg:"" help:"Buffer handle."`
}

// Run executes the buffer free command.
func (c *BufferFreeCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	if err := b.FreeBuffer(ctx, c.Handle.Value); err != nil {
		return err
	}
	return cli.PrintOutf("Freed buffer %d\n", c.Handle.Value)
}

// BufferListCmd lists the session's buffer objects.
type BufferListCmd struct {
	OutputFlags
}

// Run executes the buffer list command.
func (c *BufferListCmd) Run(cli *CLI, ctx context.Context) error {
	b, err := cli.Client()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer b.Close()

	bufs, err := b.ListBuffers(ctx)
	if err != nil {
		return err
	}
	if len(bufs) == 0 && c.Output != OutputFormatJSON {
		return cli.PrintOut("No buffer objects\n")
	}
	output, err := FormatBuffers(bufs, &c.OutputFlags)
	if err != nil {
		return err
	}
	return cli.PrintOut(output)
}
