// Package server implements the xdna gRPC service over a manager.Device.
//
// Every call names its client in the "xdna-client" metadata key. The
// server keeps no per-connection state: a client's contexts and buffers
// live until it calls CloseSession or the daemon shuts down.
package server

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/job"
	"github.com/frobware/go-xdna/manager"
	"github.com/frobware/go-xdna/metrics"
	"github.com/frobware/go-xdna/server/api"
	"github.com/frobware/go-xdna/server/pb"
)

// Server implements pb.XdnaServer.
type Server struct {
	pb.UnimplementedXdnaServer

	dev       *manager.Device
	pool      *buffer.Pool
	metrics   *metrics.Metrics
	logger    *slog.Logger
	opCounter atomic.Uint64
}

// New returns a server for dev. Buffers are allocated from pool. m may
// be nil.
func New(dev *manager.Device, pool *buffer.Pool, m *metrics.Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		dev:     dev,
		pool:    pool,
		metrics: m,
		logger:  manager.WithOpIDHandler(logger).With("component", "server"),
	}
}

// Register adds the service to s.
func (s *Server) Register(r grpc.ServiceRegistrar) {
	pb.RegisterXdnaServer(r, s)
}

type clientKey struct{}

// clientFrom returns the client id the interceptor stored in ctx.
func clientFrom(ctx context.Context) xdna.ClientID {
	id, _ := ctx.Value(clientKey{}).(xdna.ClientID)
	return id
}

func clientFromMetadata(ctx context.Context) (xdna.ClientID, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	vals := md.Get(api.ClientMetadataKey)
	if len(vals) == 0 || vals[0] == "" {
		return "", status.Errorf(codes.Unauthenticated, "missing %s metadata", api.ClientMetadataKey)
	}
	return xdna.ClientID(vals[0]), nil
}

// UnaryInterceptor assigns each call an operation id, resolves the
// calling client and converts domain errors to status errors.
func (s *Server) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		opID := s.opCounter.Add(1)
		ctx = manager.ContextWithOpID(ctx, opID)
		client, err := clientFromMetadata(ctx)
		if err != nil {
			return nil, err
		}
		ctx = context.WithValue(ctx, clientKey{}, client)

		resp, err := handler(ctx, req)
		if err != nil {
			s.logger.DebugContext(ctx, "call failed", "method", info.FullMethod, "client", client, "error", err)
			return nil, api.ServerError(err)
		}
		return resp, nil
	}
}

func (s *Server) manager(ctx context.Context) *manager.Manager {
	return s.dev.Manager(clientFrom(ctx))
}

func (s *Server) buffersChanged() {
	if s.metrics != nil {
		s.metrics.BuffersMapped.Set(float64(s.pool.Len()))
	}
}

// intArg converts a wire integer to int, rejecting values the platform
// int cannot hold.
func intArg(name string, v int64) (int, error) {
	if int64(int(v)) != v {
		return 0, status.Errorf(codes.InvalidArgument, "%s %d out of range", name, v)
	}
	return int(v), nil
}

func (s *Server) CreateBuffer(ctx context.Context, req *pb.CreateBufferRequest) (*pb.CreateBufferResponse, error) {
	size, err := intArg("size", req.GetSize())
	if err != nil {
		return nil, err
	}
	h, err := s.pool.Create(clientFrom(ctx), size)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	s.buffersChanged()
	return &pb.CreateBufferResponse{Handle: uint32(h)}, nil
}

func (s *Server) WriteBuffer(ctx context.Context, req *pb.WriteBufferRequest) (*pb.Empty, error) {
	offset, err := intArg("offset", req.GetOffset())
	if err != nil {
		return nil, err
	}
	if err := s.pool.Write(clientFrom(ctx), xdna.BufferHandle(req.GetHandle()), offset, req.GetData()); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *Server) ReadBuffer(ctx context.Context, req *pb.ReadBufferRequest) (*pb.ReadBufferResponse, error) {
	offset, err := intArg("offset", req.GetOffset())
	if err != nil {
		return nil, err
	}
	length, err := intArg("length", req.GetLength())
	if err != nil {
		return nil, err
	}
	data, err := s.pool.Read(clientFrom(ctx), xdna.BufferHandle(req.GetHandle()), offset, length)
	if err != nil {
		return nil, err
	}
	return &pb.ReadBufferResponse{Data: data}, nil
}

func (s *Server) FreeBuffer(ctx context.Context, req *pb.FreeBufferRequest) (*pb.Empty, error) {
	if err := s.pool.Free(clientFrom(ctx), xdna.BufferHandle(req.GetHandle())); err != nil {
		return nil, err
	}
	s.buffersChanged()
	return &pb.Empty{}, nil
}

func (s *Server) ListBuffers(ctx context.Context, _ *pb.Empty) (*pb.ListBuffersResponse, error) {
	infos := s.pool.List(clientFrom(ctx))
	resp := &pb.ListBuffersResponse{Buffers: make([]*pb.BufferInfo, len(infos))}
	for i, info := range infos {
		resp.Buffers[i] = api.BufferInfoToPB(info)
	}
	return resp, nil
}

func (s *Server) CreateContext(ctx context.Context, req *pb.CreateContextRequest) (*pb.ContextResponse, error) {
	spec, err := api.ContextSpecFromPB(req.GetSpec())
	if err != nil {
		return nil, err
	}
	hw, err := s.manager(ctx).CreateContext(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &pb.ContextResponse{Context: api.HWContextToPB(hw)}, nil
}

func (s *Server) ConfigContext(ctx context.Context, req *pb.ConfigContextRequest) (*pb.Empty, error) {
	cus, err := api.CUConfigsFromPB(req.GetCus())
	if err != nil {
		return nil, err
	}
	if err := s.manager(ctx).ConfigContext(ctx, xdna.ContextID(req.GetContext()), cus); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *Server) DestroyContext(ctx context.Context, req *pb.DestroyContextRequest) (*pb.Empty, error) {
	if err := s.manager(ctx).DestroyContext(ctx, xdna.ContextID(req.GetContext()), req.GetForce()); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *Server) GetContext(ctx context.Context, req *pb.GetContextRequest) (*pb.ContextResponse, error) {
	hw, err := s.manager(ctx).GetContext(xdna.ContextID(req.GetContext()))
	if err != nil {
		return nil, err
	}
	return &pb.ContextResponse{Context: api.HWContextToPB(hw)}, nil
}

func (s *Server) ListContexts(ctx context.Context, _ *pb.Empty) (*pb.ListContextsResponse, error) {
	contexts := s.manager(ctx).ListContexts()
	resp := &pb.ListContextsResponse{Contexts: make([]*pb.HWContext, len(contexts))}
	for i, hw := range contexts {
		resp.Contexts[i] = api.HWContextToPB(hw)
	}
	return resp, nil
}

func (s *Server) Submit(ctx context.Context, req *pb.SubmitRequest) (*pb.SubmitResponse, error) {
	seq, err := s.manager(ctx).Submit(ctx, xdna.ContextID(req.GetContext()), xdna.BufferHandle(req.GetCommand()), api.HandlesFromPB(req.GetBuffers()))
	if err != nil {
		return nil, err
	}
	return &pb.SubmitResponse{Seq: seq}, nil
}

// maxWaitMillis is the largest wire timeout representable as a
// time.Duration.
const maxWaitMillis = math.MaxInt64 / int64(time.Millisecond)

// waitTimeout converts the wire timeout to the tracker's convention.
// Timeouts too large for a Duration saturate instead of wrapping.
func waitTimeout(ms int64) time.Duration {
	switch {
	case ms < 0:
		return job.NoTimeout
	case ms > maxWaitMillis:
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *Server) Wait(ctx context.Context, req *pb.WaitRequest) (*pb.StateResponse, error) {
	state, err := s.manager(ctx).Wait(ctx, xdna.ContextID(req.GetContext()), req.GetSeq(), waitTimeout(req.GetTimeoutMs()))
	if err != nil {
		return nil, err
	}
	return &pb.StateResponse{State: uint32(state)}, nil
}

func (s *Server) Cancel(ctx context.Context, req *pb.CancelRequest) (*pb.StateResponse, error) {
	state, err := s.manager(ctx).Cancel(ctx, xdna.ContextID(req.GetContext()), req.GetSeq())
	if err != nil {
		return nil, err
	}
	return &pb.StateResponse{State: uint32(state)}, nil
}

func (s *Server) Jobs(ctx context.Context, req *pb.JobsRequest) (*pb.JobsResponse, error) {
	m := s.manager(ctx)
	id := xdna.ContextID(req.GetContext())
	var (
		jobs []job.Info
		err  error
	)
	if req.GetHistory() {
		jobs, err = m.History(ctx, id)
	} else {
		jobs, err = m.Jobs(id)
	}
	if err != nil {
		return nil, err
	}
	resp := &pb.JobsResponse{Jobs: make([]*pb.JobInfo, len(jobs))}
	for i, j := range jobs {
		resp.Jobs[i] = api.JobInfoToPB(j)
	}
	return resp, nil
}

func (s *Server) Reclaim(ctx context.Context, req *pb.ReclaimRequest) (*pb.ReclaimResponse, error) {
	low, err := s.manager(ctx).Reclaim(xdna.ContextID(req.GetContext()), req.GetUpTo())
	if err != nil {
		return nil, err
	}
	return &pb.ReclaimResponse{LowWater: low}, nil
}

func (s *Server) Suspend(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	if err := s.manager(ctx).Suspend(ctx); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *Server) Resume(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	if err := s.manager(ctx).Resume(ctx); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

// CloseSession removes every context of the caller, then frees its
// buffers. Buffers still pinned by a job stay mapped until the job is
// released.
func (s *Server) CloseSession(ctx context.Context, _ *pb.Empty) (*pb.CloseSessionResponse, error) {
	client := clientFrom(ctx)
	n := len(s.dev.Manager(client).ListContexts())
	if err := s.dev.CloseClient(ctx, client); err != nil {
		return nil, err
	}
	freed := s.pool.FreeAll(client)
	s.buffersChanged()
	s.logger.InfoContext(ctx, "closed session", "client", client, "contexts", n, "buffers", freed)
	return &pb.CloseSessionResponse{Contexts: int64(n), Buffers: int64(freed)}, nil
}

// Shutdown closes every client session.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, client := range s.dev.Clients() {
		if err := s.dev.CloseClient(ctx, client); err != nil {
			errs = append(errs, err)
		}
		s.pool.FreeAll(client)
	}
	s.buffersChanged()
	return errors.Join(errs...)
}
