package cli_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/cmd/xdna/cli"
	"github.com/frobware/go-xdna/command"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestCLIPrintOutPropagatesError(t *testing.T) {
	c := &cli.CLI{Out: failingWriter{err: syscall.EPIPE}}
	require.True(t, errors.Is(c.PrintOut("test output"), syscall.EPIPE))
	require.True(t, errors.Is(c.PrintOutf("test %s", "output"), syscall.EPIPE))
}

func parse(t *testing.T, args ...string) (*cli.CLI, *kong.Context) {
	t.Helper()
	var c cli.CLI
	parser, err := kong.New(&c, cli.KongOptions()...)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &c, kctx
}

func TestParseCtxCreate(t *testing.T) {
	c, kctx := parse(t, "ctx", "create", "--columns", "2", "--column-list", "0,2,4",
		"--cu", "5", "--cu", "6:1", "--name", "vision", "-o", "json")
	assert.Equal(t, "ctx create", kctx.Command())

	got := c.Ctx.Create
	assert.Equal(t, uint32(2), got.Columns)
	assert.Equal(t, []uint32{0, 2, 4}, got.ColumnList)
	assert.Equal(t, "vision", got.Name)
	assert.Equal(t, cli.OutputFormatJSON, got.Output)
	require.Len(t, got.CUs, 2)
	assert.Equal(t, xdna.CUConfig{BO: 6, Function: 1}, got.CUs[1].Value)
}

func TestParseWaitTimeout(t *testing.T) {
	c, kctx := parse(t, "wait", "0x2", "9", "--timeout", "250ms")
	assert.Equal(t, "wait <context> <seq>", kctx.Command())
	assert.Equal(t, xdna.ContextID(2), c.Wait.Context.Value)
	assert.Equal(t, uint64(9), c.Wait.Seq)
	require.NotNil(t, c.Wait.Timeout)
	assert.Equal(t, 250*time.Millisecond, *c.Wait.Timeout)

	c, _ = parse(t, "wait", "2", "9")
	assert.Nil(t, c.Wait.Timeout, "absent flag falls back to the config default")
}

func TestParseRejectsBadContextID(t *testing.T) {
	var c cli.CLI
	parser, err := kong.New(&c, append(cli.KongOptions(), kong.Exit(func(int) {}))...)
	require.NoError(t, err)
	_, err = parser.Parse([]string{"ctx", "destroy", "nope"})
	require.Error(t, err)
}

func TestPacketFlagsBuild(t *testing.T) {
	f := cli.PacketFlags{Opcode: "start-cu", CU: 31, Args: []uint32{7, 8}}
	cmd, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, command.OpStartCU, cmd.Header.Opcode)
	idx, ok := cmd.CUIndex()
	require.True(t, ok)
	assert.Equal(t, 31, idx)

	_, err = (&cli.PacketFlags{Opcode: "start-cu", CU: command.CUsPerMask}).Build()
	require.Error(t, err)
	assert.Equal(t, []uint32{7, 8}, cmd.PayloadWords())

	f = cli.PacketFlags{Opcode: "start-dpu", Instr: 0x1_0000_0040, InstrSize: 256}
	cmd, err = f.Build()
	require.NoError(t, err)
	p, err := cmd.DecodePayload()
	require.NoError(t, err)
	assert.Equal(t, command.StartDPU{InstructionBuffer: 0x1_0000_0040, InstructionBufferSize: 256}, p)

	f = cli.PacketFlags{Opcode: "cmd-chain", Chain: []cli.BufferHandle{{Value: 3}, {Value: 4}}}
	cmd, err = f.Build()
	require.NoError(t, err)
	refs, err := command.ExpandChain(cmd.Marshal())
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 4}, refs)

	_, err = (&cli.PacketFlags{Opcode: "cmd-chain"}).Build()
	require.Error(t, err)
	_, err = (&cli.PacketFlags{Opcode: "reset"}).Build()
	require.Error(t, err)
}

func TestExecRunsCommandsInProcess(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	c := &cli.CLI{
		RuntimeDir: filepath.Join(dir, "rt"),
		Config:     filepath.Join(dir, "absent.toml"),
		ClientID:   "exec-test",
		Out:        &out,
	}
	cmd := cli.ExecCmd{Columns: 2, CUs: 2, Count: 3, Timeout: 5 * time.Second}
	cmd.Output = cli.OutputFormatTable

	require.NoError(t, cmd.Run(c, t.Context()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4, out.String())
	assert.Contains(t, lines[0], "STATE")
	for i, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, string(rune('0'+i))), line)
		assert.Contains(t, line, "completed")
	}
	assert.Contains(t, lines[2], "start_cu  1", "second command runs on CU 1")
}
