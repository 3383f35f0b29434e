package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/config"
	"github.com/frobware/go-xdna/interpreter"
	"github.com/frobware/go-xdna/interpreter/sim"
	"github.com/frobware/go-xdna/interpreter/store/sqlite"
	"github.com/frobware/go-xdna/lock"
	"github.com/frobware/go-xdna/manager"
	"github.com/frobware/go-xdna/metrics"
	"github.com/frobware/go-xdna/resource"
)

// RunConfig configures the daemon.
type RunConfig struct {
	Dirs config.RuntimeDirs
	// TCPAddress optionally exposes the service on TCP as well as the
	// Unix socket.
	TCPAddress string
	Config     config.Config
	Logger     *slog.Logger
}

// Runtime is the assembled device stack the daemon serves.
type Runtime struct {
	Store   interpreter.Store
	Backend *sim.Backend
	Pool    *buffer.Pool
	Metrics *metrics.Metrics
	Device  *manager.Device
	// Stale counts the context records removed at startup.
	Stale int
}

// NewRuntime opens the store at dirs and builds a simulated device
// from cfg. Stale contexts left by a previous daemon are removed.
func NewRuntime(ctx context.Context, dirs config.RuntimeDirs, cfg config.Config, logger *slog.Logger) (*Runtime, error) {
	st, err := sqlite.New(ctx, dirs.DBPath(), logger)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", dirs.DBPath(), err)
	}
	table, err := resource.NewTable(cfg.Device.Columns, logger)
	if err != nil {
		st.Close()
		return nil, err
	}
	rt := &Runtime{
		Store: st,
		Backend: sim.NewBackend(sim.Options{
			Latency:   cfg.Backend.Latency.Duration,
			HangAfter: cfg.Backend.HangAfter.Duration,
			Logger:    logger,
		}),
		Pool:    buffer.NewPool(logger),
		Metrics: metrics.New(),
	}
	rt.Device, err = manager.NewDevice(manager.DeviceConfig{
		Table:      table,
		Firmware:   sim.NewFirmware(logger),
		Dispatcher: rt.Backend,
		Buffers:    rt.Pool,
		Store:      st,
		Metrics:    rt.Metrics,
		Retain:     cfg.Jobs.RetainCompleted,
		Logger:     logger,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}
	if rt.Stale, err = rt.Device.GC(ctx); err != nil {
		rt.Close()
		return nil, err
	}
	return rt, nil
}

// Close stops the backend and closes the store.
func (rt *Runtime) Close() error {
	return errors.Join(rt.Backend.Close(), rt.Store.Close())
}

// Run starts the daemon and blocks until ctx is cancelled or a listener
// fails. Only one daemon may run per runtime directory.
func Run(ctx context.Context, cfg RunConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	dirs := cfg.Dirs

	if err := dirs.EnsureDirectories(); err != nil {
		return fmt.Errorf("runtime directory setup failed: %w", err)
	}
	l, err := lock.TryAcquire(dirs.Lock())
	if err != nil {
		return err
	}
	defer l.Release()

	rt, err := NewRuntime(ctx, dirs, cfg.Config, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	srv := New(rt.Device, rt.Pool, rt.Metrics, logger)
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(srv.UnaryInterceptor()))
	srv.Register(grpcServer)

	// Bind every listener before serving so a bind failure leaves
	// nothing running.
	unixListener, err := listenUnix(dirs.SocketPath())
	if err != nil {
		return err
	}
	defer unixListener.Close()

	var tcpListener net.Listener
	if cfg.TCPAddress != "" {
		tcpListener, err = net.Listen("tcp", cfg.TCPAddress)
		if err != nil {
			return fmt.Errorf("listen on TCP %s: %w", cfg.TCPAddress, err)
		}
		defer tcpListener.Close()
	}

	var (
		metricsListener net.Listener
		metricsServer   *http.Server
	)
	if addr := cfg.Config.Server.MetricsAddress; addr != "" {
		metricsListener, err = net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("metrics listen on %s: %w", addr, err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", rt.Metrics.Handler())
		metricsServer = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	} else {
		logger.Info("metrics HTTP server disabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "xdna gRPC server listening", "socket", dirs.SocketPath())
		if err := grpcServer.Serve(unixListener); err != nil {
			return fmt.Errorf("unix socket server: %w", err)
		}
		return nil
	})
	if tcpListener != nil {
		g.Go(func() error {
			logger.InfoContext(gctx, "xdna gRPC server listening", "tcp", tcpListener.Addr().String())
			if err := grpcServer.Serve(tcpListener); err != nil {
				return fmt.Errorf("tcp server: %w", err)
			}
			return nil
		})
	}
	if metricsServer != nil {
		g.Go(func() error {
			logger.InfoContext(gctx, "metrics HTTP server listening", "address", metricsListener.Addr().String())
			if err := metricsServer.Serve(metricsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), 5*time.Second)
		defer cancel()
		// Closing sessions aborts outstanding jobs, which releases
		// blocked waiters so the graceful stop can finish.
		err := srv.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		if metricsServer != nil {
			_ = metricsServer.Shutdown(shutdownCtx)
		}
		return err
	})

	return g.Wait()
}

func listenUnix(socketPath string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o755); err != nil {
		return nil, fmt.Errorf("create socket directory: %w", err)
	}
	if err := os.RemoveAll(socketPath); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}
	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	if err := os.Chmod(socketPath, 0o660); err != nil {
		ln.Close()
		return nil, fmt.Errorf("set socket permissions: %w", err)
	}
	return ln, nil
}
