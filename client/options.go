package client

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/config"
	"github.com/frobware/go-xdna/logging"
)

// DefaultSocketPath returns the daemon socket of the default runtime
// directory.
func DefaultSocketPath() string {
	return config.DefaultRuntimeDirs().SocketPath()
}

// Option configures client behaviour.
type Option interface {
	applyDial(*dialOptions)
	applyOpen(*openOptions)
}

type dialOptions struct {
	logger *slog.Logger
	id     xdna.ClientID
}

type openOptions struct {
	logger *slog.Logger
	id     xdna.ClientID
	path   string
	config config.Config
}

type funcOption struct {
	dial func(*dialOptions)
	open func(*openOptions)
}

func (f *funcOption) applyDial(o *dialOptions) {
	if f.dial != nil {
		f.dial(o)
	}
}

func (f *funcOption) applyOpen(o *openOptions) {
	if f.open != nil {
		f.open(o)
	}
}

// WithLogger sets the logger for client operations.
// If not specified, a no-op logger is used.
func WithLogger(l *slog.Logger) Option {
	return &funcOption{
		dial: func(o *dialOptions) { o.logger = l },
		open: func(o *openOptions) { o.logger = l },
	}
}

// WithClientID sets the identity the client presents. Reusing an id
// reattaches to the contexts and buffers created under it. If not
// specified, a random UUID is used.
func WithClientID(id xdna.ClientID) Option {
	return &funcOption{
		dial: func(o *dialOptions) { o.id = id },
		open: func(o *openOptions) { o.id = id },
	}
}

// WithRuntimeDir sets the base runtime directory for Open.
// If not specified, defaults to /run/xdna.
// This option has no effect on Dial.
func WithRuntimeDir(path string) Option {
	return &funcOption{
		open: func(o *openOptions) { o.path = path },
	}
}

// WithConfig sets the device configuration for Open.
// This option has no effect on Dial.
func WithConfig(cfg config.Config) Option {
	return &funcOption{
		open: func(o *openOptions) { o.config = cfg },
	}
}

func newClientID() xdna.ClientID {
	return xdna.ClientID(uuid.NewString())
}

// Dial connects to a daemon at address, which may be:
//   - "host:port" for TCP connections
//   - "unix:///path/to/socket" for Unix socket connections
//   - "/path/to/socket" for Unix socket connections (shorthand)
//
// The returned client must be closed when no longer needed. Closing
// does not end the session; call CloseSession for that.
func Dial(address string, opts ...Option) (Client, error) {
	o := &dialOptions{logger: discard()}
	for _, opt := range opts {
		opt.applyDial(o)
	}
	if o.id == "" {
		o.id = newClientID()
	}
	return newRemote(address, o.id, o.logger)
}

func discard() *slog.Logger { return logging.Discard() }
