//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/client"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/config"
	"github.com/frobware/go-xdna/logging"
	"github.com/frobware/go-xdna/server"
)

// TestEnv provides an isolated daemon for e2e tests. Each test gets
// its own runtime directory, database and socket, enabling t.Parallel()
// across all tests.
type TestEnv struct {
	T      *testing.T
	Dirs   config.RuntimeDirs
	Config config.Config
	logger *slog.Logger

	stop    context.CancelFunc
	stopped chan error
	clients []client.Client
}

// NewTestEnv creates the runtime directory layout for the calling test.
// The daemon is not started; call Start.
//
// The environment is automatically cleaned up via t.Cleanup().
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	testName := sanitizeTestName(t.Name())
	baseDir := filepath.Join(os.TempDir(), fmt.Sprintf("xdna-e2e-%d-%s", os.Getpid(), testName))
	dirs, err := config.NewRuntimeDirs(baseDir)
	require.NoError(t, err)

	// XDNA_LOG selects daemon logging, for example:
	//   XDNA_LOG=debug
	//   XDNA_LOG=info,store=debug
	logger := logging.Discard()
	if envSpec := os.Getenv(logging.EnvVar); envSpec != "" {
		logger, _, err = logging.New(logging.Options{
			EnvSpec: envSpec,
			Format:  logging.FormatText,
			Output:  os.Stderr,
		})
		if err != nil {
			t.Fatalf("invalid %s spec: %v", logging.EnvVar, err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Device.Columns = 8
	cfg.Backend.Latency = config.Duration{Duration: 2 * time.Millisecond}
	cfg.Server.MetricsAddress = ""

	env := &TestEnv{T: t, Dirs: dirs, Config: cfg, logger: logger}
	t.Cleanup(env.cleanup)
	return env
}

// Start runs the daemon and waits until its socket accepts calls.
func (e *TestEnv) Start() {
	e.T.Helper()
	require.Nil(e.T, e.stop, "daemon already running")

	ctx, cancel := context.WithCancel(context.Background())
	e.stop = cancel
	e.stopped = make(chan error, 1)
	go func() {
		e.stopped <- server.Run(ctx, server.RunConfig{
			Dirs:   e.Dirs,
			Config: e.Config,
			Logger: e.logger,
		})
	}()

	ready := e.Dial("readiness")
	deadline := time.Now().Add(10 * time.Second)
	for {
		select {
		case err := <-e.stopped:
			e.stop = nil
			e.T.Fatalf("daemon exited during startup: %v", err)
		default:
		}
		callCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		_, err := ready.ListContexts(callCtx)
		cancel()
		if err == nil {
			return
		}
		if time.Now().After(deadline) {
			e.T.Fatalf("daemon did not come up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// Stop shuts the daemon down and returns what Run returned.
func (e *TestEnv) Stop() error {
	e.T.Helper()
	if e.stop == nil {
		return nil
	}
	e.stop()
	e.stop = nil
	select {
	case err := <-e.stopped:
		return err
	case <-time.After(15 * time.Second):
		e.T.Fatal("daemon did not stop")
		return nil
	}
}

// Dial connects a client with the given identity to the daemon socket.
// It is closed by cleanup.
func (e *TestEnv) Dial(id xdna.ClientID) client.Client {
	e.T.Helper()
	c, err := client.Dial(e.Dirs.SocketPath(), client.WithClientID(id), client.WithLogger(e.logger))
	require.NoError(e.T, err)
	e.clients = append(e.clients, c)
	return c
}

func (e *TestEnv) cleanup() {
	for _, c := range e.clients {
		c.Close()
	}
	if err := e.Stop(); err != nil && !errors.Is(err, context.Canceled) {
		e.T.Logf("warning: daemon stopped with error: %v", err)
	}

	if err := os.RemoveAll(e.Dirs.Base()); err != nil {
		e.T.Logf("warning: failed to remove %s: %v", e.Dirs.Base(), err)
	}
	if err := os.RemoveAll(e.Dirs.Sock()); err != nil {
		e.T.Logf("warning: failed to remove %s: %v", e.Dirs.Sock(), err)
	}
}

// UploadStartCU uploads a START_CU packet for cu carrying args.
func UploadStartCU(t *testing.T, c client.Client, cu int, args ...uint32) xdna.BufferHandle {
	t.Helper()
	cmd, err := command.New(command.CUMask(cu), command.StartCU{Args: args})
	require.NoError(t, err)
	h, err := client.Upload(context.Background(), c, cmd)
	require.NoError(t, err)
	return h
}

// CreateContext creates a READY context with cus compute units.
func CreateContext(t *testing.T, c client.Client, columns uint32, cus int) xdna.HWContext {
	t.Helper()
	ctx := context.Background()
	spec := xdna.ContextSpec{Columns: columns}
	for range cus {
		pdi, err := c.CreateBuffer(ctx, 64)
		require.NoError(t, err)
		spec.CUs = append(spec.CUs, xdna.CUConfig{BO: pdi})
	}
	hw, err := c.CreateContext(ctx, spec)
	require.NoError(t, err)
	require.Equal(t, xdna.StatusReady, hw.Status)
	return hw
}

func sanitizeTestName(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, " ", "_")
	if len(name) > 40 {
		name = name[:40]
	}
	return name
}

// cleanupStaleTestDirs removes leftover test directories from previous runs.
func cleanupStaleTestDirs() {
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "xdna-e2e-*"))
	if err != nil {
		return
	}

	for _, path := range matches {
		// Skip directories of a run that is still alive.
		parts := strings.Split(filepath.Base(path), "-")
		if len(parts) >= 3 {
			if pid, err := strconv.Atoi(parts[2]); err == nil {
				if _, err := os.Stat(fmt.Sprintf("/proc/%d", pid)); err == nil {
					continue
				}
			}
		}
		_ = os.RemoveAll(path)
	}
}
