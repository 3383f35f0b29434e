package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/grpc"

	"github.com/frobware/go-xdna/config"
	"github.com/frobware/go-xdna/lock"
	"github.com/frobware/go-xdna/server"
)

// ephemeralClient runs the daemon in process on a private Unix socket
// and talks to it through a remoteClient, so both clients share the
// gRPC handlers as their single implementation.
type ephemeralClient struct {
	*remoteClient

	lock       *lock.Instance
	rt         *server.Runtime
	srv        *server.Server
	grpcServer *grpc.Server
	socketPath string
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// Open runs the device in process. It waits for the runtime directory
// lock, so it cannot share a directory with a running daemon. Closing
// the client ends its session.
func Open(ctx context.Context, opts ...Option) (Client, error) {
	o := &openOptions{
		logger: discard(),
		config: config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt.applyOpen(o)
	}
	if o.id == "" {
		o.id = newClientID()
	}

	dirs := config.DefaultRuntimeDirs()
	if o.path != "" {
		var err error
		if dirs, err = config.NewRuntimeDirs(o.path); err != nil {
			return nil, err
		}
	}
	return newEphemeral(ctx, dirs, o)
}

func newEphemeral(ctx context.Context, dirs config.RuntimeDirs, o *openOptions) (*ephemeralClient, error) {
	if err := dirs.EnsureDirectories(); err != nil {
		return nil, err
	}
	l, err := lock.Acquire(ctx, dirs.Lock())
	if err != nil {
		return nil, fmt.Errorf("lock runtime directory: %w", err)
	}

	rt, err := server.NewRuntime(ctx, dirs, o.config, o.logger)
	if err != nil {
		l.Release()
		return nil, fmt.Errorf("setup runtime: %w", err)
	}

	srv := server.New(rt.Device, rt.Pool, rt.Metrics, o.logger)
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(srv.UnaryInterceptor()))
	srv.Register(grpcServer)

	socketPath := filepath.Join(dirs.Sock(), fmt.Sprintf("ephemeral-%d.sock", os.Getpid()))
	_ = os.Remove(socketPath)
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		rt.Close()
		l.Release()
		return nil, fmt.Errorf("listen on socket %s: %w", socketPath, err)
	}

	e := &ephemeralClient{
		lock:       l,
		rt:         rt,
		srv:        srv,
		grpcServer: grpcServer,
		socketPath: socketPath,
		logger:     o.logger,
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := grpcServer.Serve(listener); err != nil {
			o.logger.Error("ephemeral server failed", "error", err)
		}
	}()

	remote, err := newRemote(socketPath, o.id, o.logger)
	if err != nil {
		e.shutdown()
		return nil, fmt.Errorf("connect to ephemeral server: %w", err)
	}
	e.remoteClient = remote
	return e, nil
}

// Close ends every session, stops the server and releases the runtime
// directory.
func (e *ephemeralClient) Close() error {
	var errs []error
	if e.remoteClient != nil {
		errs = append(errs, e.remoteClient.Close())
	}
	errs = append(errs, e.shutdown())
	return errors.Join(errs...)
}

func (e *ephemeralClient) shutdown() error {
	err := e.srv.Shutdown(context.Background())
	e.grpcServer.GracefulStop()
	e.wg.Wait()
	errs := []error{err, e.rt.Close()}
	if rmErr := os.Remove(e.socketPath); rmErr != nil && !os.IsNotExist(rmErr) {
		e.logger.Warn("failed to remove socket during close", "path", e.socketPath, "error", rmErr)
	}
	errs = append(errs, e.lock.Release())
	return errors.Join(errs...)
}
