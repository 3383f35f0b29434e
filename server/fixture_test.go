package server_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/interpreter/sim"
	"github.com/frobware/go-xdna/interpreter/store/sqlite"
	"github.com/frobware/go-xdna/logging"
	"github.com/frobware/go-xdna/manager"
	"github.com/frobware/go-xdna/metrics"
	"github.com/frobware/go-xdna/resource"
	"github.com/frobware/go-xdna/server"
	"github.com/frobware/go-xdna/server/api"
	"github.com/frobware/go-xdna/server/pb"
)

// testFixture runs a server over an in-memory connection with the
// simulated backend and an in-memory store.
type testFixture struct {
	t       *testing.T
	Client  pb.XdnaClient
	Table   *resource.Table
	Pool    *buffer.Pool
	Metrics *metrics.Metrics
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	ctx := context.Background()
	logger := logging.Discard()

	store, err := sqlite.NewInMemory(ctx, logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	table, err := resource.NewTable(4, logger)
	require.NoError(t, err)
	backend := sim.NewBackend(sim.Options{Latency: time.Millisecond, Logger: logger})
	t.Cleanup(func() { backend.Close() })
	pool := buffer.NewPool(logger)
	m := metrics.New()

	dev, err := manager.NewDevice(manager.DeviceConfig{
		Table:      table,
		Firmware:   sim.NewFirmware(logger),
		Dispatcher: backend,
		Buffers:    pool,
		Store:      store,
		Metrics:    m,
		Logger:     logger,
	})
	require.NoError(t, err)

	srv := server.New(dev, pool, m, logger)
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(grpc.UnaryInterceptor(srv.UnaryInterceptor()))
	srv.Register(gs)
	go gs.Serve(lis)
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &testFixture{t: t, Client: pb.NewXdnaClient(conn), Table: table, Pool: pool, Metrics: m}
}

// as returns a context that identifies the caller as client.
func as(client xdna.ClientID) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), api.ClientMetadataKey, string(client))
}

// upload creates a buffer for the caller in ctx, writes data to it and
// returns its wire handle.
func (f *testFixture) upload(ctx context.Context, data []byte) uint32 {
	f.t.Helper()
	resp, err := f.Client.CreateBuffer(ctx, &pb.CreateBufferRequest{Size: int64(len(data))})
	require.NoError(f.t, err)
	_, err = f.Client.WriteBuffer(ctx, &pb.WriteBufferRequest{Handle: resp.GetHandle(), Data: data})
	require.NoError(f.t, err)
	return resp.GetHandle()
}

func (f *testFixture) startCU(ctx context.Context, args ...uint32) uint32 {
	f.t.Helper()
	cmd, err := command.New(command.CUMask(0), command.StartCU{Args: args})
	require.NoError(f.t, err)
	return f.upload(ctx, cmd.Marshal())
}

func (f *testFixture) createContext(ctx context.Context, cols uint32) xdna.HWContext {
	f.t.Helper()
	resp, err := f.Client.CreateContext(ctx, &pb.CreateContextRequest{Spec: api.ContextSpecToPB(xdna.ContextSpec{Columns: cols})})
	require.NoError(f.t, err)
	hw, err := api.HWContextFromPB(resp.GetContext())
	require.NoError(f.t, err)
	return hw
}
