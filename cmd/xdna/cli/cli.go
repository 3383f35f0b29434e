// Package cli provides the Kong-based command-line interface for xdna.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/alecthomas/kong"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/client"
	"github.com/frobware/go-xdna/config"
	"github.com/frobware/go-xdna/logging"
)

// CLI is the root command structure for xdna.
type CLI struct {
	RuntimeDir string `name:"runtime-dir" help:"Runtime directory holding the database, lock and socket." default:"${default_runtime_dir}" env:"XDNA_RUNTIME_DIR"`
	Config     string `name:"config" help:"Config file path." default:"${default_config_path}"`
	Log        string `name:"log" help:"Log spec (e.g., 'info,manager=debug'). Overrides $XDNA_LOG."`
	Remote     string `name:"remote" short:"r" help:"Daemon endpoint (unix:///path or host:port). Defaults to the runtime directory's socket."`
	ClientID   string `name:"client-id" help:"Session identity. Invocations sharing an id share contexts and buffers." default:"${default_client_id}" env:"XDNA_CLIENT_ID"`

	// Out receives command output. Nil means os.Stdout.
	Out io.Writer `kong:"-"`

	Serve   ServeCmd   `cmd:"" help:"Start the gRPC daemon."`
	Ctx     CtxCmd     `cmd:"" name:"ctx" help:"Hardware context operations."`
	Buffer  BufferCmd  `cmd:"" help:"Buffer object operations."`
	Submit  SubmitCmd  `cmd:"" help:"Submit a command to a context."`
	Wait    WaitCmd    `cmd:"" help:"Wait for a submitted command to finish."`
	Cancel  CancelCmd  `cmd:"" help:"Abort a submitted command."`
	Jobs    JobsCmd    `cmd:"" help:"List or reclaim jobs of a context."`
	Session SessionCmd `cmd:"" help:"Session operations (close, suspend, resume)."`
	Exec    ExecCmd    `cmd:"" help:"Run commands on an in-process device without a daemon."`
	GC      GCCmd      `cmd:"" name:"gc" help:"Remove context records left by a previous daemon."`
}

// KongOptions returns the Kong configuration options for the CLI.
func KongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("xdna"),
		kong.Description("Hardware context and command manager for AIE devices."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.TypeMapper(reflect.TypeOf(ContextID{}), contextIDMapper()),
		kong.TypeMapper(reflect.TypeOf(BufferHandle{}), bufferHandleMapper()),
		kong.TypeMapper(reflect.TypeOf(CUSpec{}), cuSpecMapper()),
		kong.Vars{
			"default_runtime_dir": config.DefaultRuntimeDirs().Base(),
			"default_config_path": config.DefaultConfigPath,
			"default_client_id":   fmt.Sprintf("cli-%d", os.Getuid()),
		},
	}
}

// LoadConfig loads the configuration from the config file path.
func (c *CLI) LoadConfig() (config.Config, error) {
	return config.Load(c.Config)
}

// RuntimeDirs returns the runtime layout rooted at --runtime-dir.
func (c *CLI) RuntimeDirs() (config.RuntimeDirs, error) {
	return config.NewRuntimeDirs(c.RuntimeDir)
}

// Logger creates a logger for CLI commands. Commands log to stderr at
// the configured level unless --log or $XDNA_LOG says otherwise.
func (c *CLI) Logger() (*slog.Logger, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}
	return c.logger(cfg, os.Stderr)
}

// LoggerFromConfig creates a logger for long-running services.
// Output goes to stdout for daemon log collection.
func (c *CLI) LoggerFromConfig(cfg config.Config) (*slog.Logger, error) {
	return c.logger(cfg, os.Stdout)
}

func (c *CLI) logger(cfg config.Config, out io.Writer) (*slog.Logger, error) {
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	logger, _, err := logging.New(logging.Options{
		CLISpec:    c.Log,
		EnvSpec:    os.Getenv(logging.EnvVar),
		ConfigSpec: cfg.Logging.ToSpec(),
		Format:     format,
		Output:     out,
	})
	return logger, err
}

// Client connects to the daemon named by --remote, or to the socket of
// the runtime directory. The returned client must be closed when no
// longer needed; closing does not end the session.
func (c *CLI) Client() (client.Client, error) {
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}
	addr := c.Remote
	if addr == "" {
		dirs, err := c.RuntimeDirs()
		if err != nil {
			return nil, err
		}
		addr = dirs.SocketPath()
	}
	return client.Dial(addr,
		client.WithLogger(logger),
		client.WithClientID(xdna.ClientID(c.ClientID)),
	)
}

func (c *CLI) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// PrintOut writes s to the command output.
func (c *CLI) PrintOut(s string) error {
	_, err := io.WriteString(c.out(), s)
	return err
}

// PrintOutf formats to the command output.
func (c *CLI) PrintOutf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.out(), format, args...)
	return err
}
