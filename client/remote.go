package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
	"github.com/frobware/go-xdna/server/api"
	"github.com/frobware/go-xdna/server/pb"
)

// remoteClient implements Client over the gRPC service. Domain errors
// come back typed: the server attaches them as status details.
type remoteClient struct {
	id     xdna.ClientID
	client pb.XdnaClient
	conn   *grpc.ClientConn
	logger *slog.Logger
}

func newRemote(address string, id xdna.ClientID, logger *slog.Logger) (*remoteClient, error) {
	target := parseAddress(address)
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", target, err)
	}
	return &remoteClient{
		id:     id,
		client: pb.NewXdnaClient(conn),
		conn:   conn,
		logger: logger,
	}, nil
}

// parseAddress normalises an address for gRPC.
func parseAddress(address string) string {
	if strings.HasPrefix(address, "unix://") {
		return address
	}
	if strings.HasPrefix(address, "/") {
		return "unix://" + address
	}
	return address
}

func (c *remoteClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *remoteClient) ID() xdna.ClientID { return c.id }

// invoke runs one call as this client and rebuilds domain errors.
func invoke[Resp any](ctx context.Context, c *remoteClient, call func(context.Context) (*Resp, error)) (*Resp, error) {
	ctx = metadata.AppendToOutgoingContext(ctx, api.ClientMetadataKey, string(c.id))
	resp, err := call(ctx)
	if err != nil {
		return nil, api.ClientError(err)
	}
	return resp, nil
}

func (c *remoteClient) CreateBuffer(ctx context.Context, size int) (xdna.BufferHandle, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.CreateBufferResponse, error) {
		return c.client.CreateBuffer(ctx, &pb.CreateBufferRequest{Size: int64(size)})
	})
	if err != nil {
		return 0, err
	}
	return xdna.BufferHandle(resp.GetHandle()), nil
}

func (c *remoteClient) WriteBuffer(ctx context.Context, h xdna.BufferHandle, offset int, data []byte) error {
	_, err := invoke(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.WriteBuffer(ctx, &pb.WriteBufferRequest{Handle: uint32(h), Offset: int64(offset), Data: data})
	})
	return err
}

func (c *remoteClient) ReadBuffer(ctx context.Context, h xdna.BufferHandle, offset, n int) ([]byte, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.ReadBufferResponse, error) {
		return c.client.ReadBuffer(ctx, &pb.ReadBufferRequest{Handle: uint32(h), Offset: int64(offset), Length: int64(n)})
	})
	if err != nil {
		return nil, err
	}
	return resp.GetData(), nil
}

func (c *remoteClient) FreeBuffer(ctx context.Context, h xdna.BufferHandle) error {
	_, err := invoke(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.FreeBuffer(ctx, &pb.FreeBufferRequest{Handle: uint32(h)})
	})
	return err
}

func (c *remoteClient) ListBuffers(ctx context.Context) ([]buffer.Info, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.ListBuffersResponse, error) {
		return c.client.ListBuffers(ctx, &pb.Empty{})
	})
	if err != nil {
		return nil, err
	}
	infos := make([]buffer.Info, len(resp.GetBuffers()))
	for i, b := range resp.GetBuffers() {
		infos[i] = api.BufferInfoFromPB(b)
	}
	return infos, nil
}

func (c *remoteClient) CreateContext(ctx context.Context, spec xdna.ContextSpec) (xdna.HWContext, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.ContextResponse, error) {
		return c.client.CreateContext(ctx, &pb.CreateContextRequest{Spec: api.ContextSpecToPB(spec)})
	})
	if err != nil {
		return xdna.HWContext{}, err
	}
	return api.HWContextFromPB(resp.GetContext())
}

func (c *remoteClient) ConfigContext(ctx context.Context, id xdna.ContextID, cus []xdna.CUConfig) error {
	_, err := invoke(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.ConfigContext(ctx, &pb.ConfigContextRequest{Context: uint32(id), Cus: api.CUConfigsToPB(cus)})
	})
	return err
}

func (c *remoteClient) DestroyContext(ctx context.Context, id xdna.ContextID, force bool) error {
	_, err := invoke(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.DestroyContext(ctx, &pb.DestroyContextRequest{Context: uint32(id), Force: force})
	})
	return err
}

func (c *remoteClient) GetContext(ctx context.Context, id xdna.ContextID) (xdna.HWContext, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.ContextResponse, error) {
		return c.client.GetContext(ctx, &pb.GetContextRequest{Context: uint32(id)})
	})
	if err != nil {
		return xdna.HWContext{}, err
	}
	return api.HWContextFromPB(resp.GetContext())
}

func (c *remoteClient) ListContexts(ctx context.Context) ([]xdna.HWContext, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.ListContextsResponse, error) {
		return c.client.ListContexts(ctx, &pb.Empty{})
	})
	if err != nil {
		return nil, err
	}
	contexts := make([]xdna.HWContext, len(resp.GetContexts()))
	for i, hc := range resp.GetContexts() {
		if contexts[i], err = api.HWContextFromPB(hc); err != nil {
			return nil, err
		}
	}
	return contexts, nil
}

func (c *remoteClient) Submit(ctx context.Context, id xdna.ContextID, cmd xdna.BufferHandle, bufs []xdna.BufferHandle) (uint64, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.SubmitResponse, error) {
		return c.client.Submit(ctx, &pb.SubmitRequest{Context: uint32(id), Command: uint32(cmd), Buffers: api.HandlesToPB(bufs)})
	})
	if err != nil {
		return 0, err
	}
	return resp.GetSeq(), nil
}

// timeoutMillis converts a wait timeout to its wire form. Positive
// timeouts below a millisecond round up so they do not turn into a
// poll.
func timeoutMillis(d time.Duration) int64 {
	switch {
	case d < 0:
		return -1
	case d == 0:
		return 0
	}
	return max(1, d.Milliseconds())
}

func (c *remoteClient) Wait(ctx context.Context, id xdna.ContextID, seq uint64, timeout time.Duration) (command.State, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.StateResponse, error) {
		return c.client.Wait(ctx, &pb.WaitRequest{Context: uint32(id), Seq: seq, TimeoutMs: timeoutMillis(timeout)})
	})
	if err != nil {
		return command.StateInvalid, err
	}
	return command.State(resp.GetState()), nil
}

func (c *remoteClient) Cancel(ctx context.Context, id xdna.ContextID, seq uint64) (command.State, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.StateResponse, error) {
		return c.client.Cancel(ctx, &pb.CancelRequest{Context: uint32(id), Seq: seq})
	})
	if err != nil {
		return command.StateInvalid, err
	}
	return command.State(resp.GetState()), nil
}

func (c *remoteClient) Jobs(ctx context.Context, id xdna.ContextID, history bool) ([]job.Info, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.JobsResponse, error) {
		return c.client.Jobs(ctx, &pb.JobsRequest{Context: uint32(id), History: history})
	})
	if err != nil {
		return nil, err
	}
	jobs := make([]job.Info, len(resp.GetJobs()))
	for i, j := range resp.GetJobs() {
		jobs[i] = api.JobInfoFromPB(j)
	}
	return jobs, nil
}

func (c *remoteClient) Reclaim(ctx context.Context, id xdna.ContextID, upTo uint64) (uint64, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.ReclaimResponse, error) {
		return c.client.Reclaim(ctx, &pb.ReclaimRequest{Context: uint32(id), UpTo: upTo})
	})
	if err != nil {
		return 0, err
	}
	return resp.GetLowWater(), nil
}

func (c *remoteClient) Suspend(ctx context.Context) error {
	_, err := invoke(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.Suspend(ctx, &pb.Empty{})
	})
	return err
}

func (c *remoteClient) Resume(ctx context.Context) error {
	_, err := invoke(ctx, c, func(ctx context.Context) (*pb.Empty, error) {
		return c.client.Resume(ctx, &pb.Empty{})
	})
	return err
}

func (c *remoteClient) CloseSession(ctx context.Context) (int, int, error) {
	resp, err := invoke(ctx, c, func(ctx context.Context) (*pb.CloseSessionResponse, error) {
		return c.client.CloseSession(ctx, &pb.Empty{})
	})
	if err != nil {
		return 0, 0, err
	}
	c.logger.Debug("session closed", "client", c.id, "contexts", resp.GetContexts(), "buffers", resp.GetBuffers())
	return int(resp.GetContexts()), int(resp.GetBuffers()), nil
}
