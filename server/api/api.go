// Package api converts between the domain types and the wire messages
// of package pb, and maps domain errors to gRPC status errors. Both the
// server and the remote client go through it so the two ends agree on
// every field.
package api

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/command"
	"github.com/frobware/go-xdna/job"
	"github.com/frobware/go-xdna/server/pb"
)

// ClientMetadataKey carries the caller's client id on every call.
const ClientMetadataKey = "xdna-client"

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timeOf(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func CUConfigsToPB(cus []xdna.CUConfig) []*pb.CUConfig {
	if len(cus) == 0 {
		return nil
	}
	out := make([]*pb.CUConfig, len(cus))
	for i, cu := range cus {
		out[i] = &pb.CUConfig{Bo: uint32(cu.BO), Function: uint32(cu.Function)}
	}
	return out
}

// CUConfigsFromPB rejects function indices that do not fit the
// 8-bit field of the firmware interface.
func CUConfigsFromPB(cus []*pb.CUConfig) ([]xdna.CUConfig, error) {
	if len(cus) == 0 {
		return nil, nil
	}
	out := make([]xdna.CUConfig, len(cus))
	for i, cu := range cus {
		if cu.GetFunction() > math.MaxUint8 {
			return nil, status.Errorf(codes.InvalidArgument, "cu[%d]: function %d out of range", i, cu.GetFunction())
		}
		out[i] = xdna.CUConfig{BO: xdna.BufferHandle(cu.GetBo()), Function: uint8(cu.GetFunction())}
	}
	return out, nil
}

func qosToPB(q xdna.QoS) *pb.QoS {
	return &pb.QoS{
		Gops:          q.GOPS,
		Fps:           q.FPS,
		DmaBandwidth:  q.DMABandwidth,
		Latency:       q.Latency,
		FrameExecTime: q.FrameExecTime,
		Priority:      q.Priority,
	}
}

func qosFromPB(q *pb.QoS) xdna.QoS {
	return xdna.QoS{
		GOPS:          q.GetGops(),
		FPS:           q.GetFps(),
		DMABandwidth:  q.GetDmaBandwidth(),
		Latency:       q.GetLatency(),
		FrameExecTime: q.GetFrameExecTime(),
		Priority:      q.GetPriority(),
	}
}

func ContextSpecToPB(spec xdna.ContextSpec) *pb.ContextSpec {
	return &pb.ContextSpec{
		Name:       spec.Name,
		Columns:    spec.Columns,
		ColumnList: spec.ColumnList,
		NumTiles:   spec.NumTiles,
		MemSize:    spec.MemSize,
		MaxOpc:     spec.MaxOpc,
		Qos:        qosToPB(spec.QoS),
		Cus:        CUConfigsToPB(spec.CUs),
	}
}

func ContextSpecFromPB(spec *pb.ContextSpec) (xdna.ContextSpec, error) {
	cus, err := CUConfigsFromPB(spec.GetCus())
	if err != nil {
		return xdna.ContextSpec{}, err
	}
	return xdna.ContextSpec{
		Name:       spec.GetName(),
		Columns:    spec.GetColumns(),
		ColumnList: spec.GetColumnList(),
		NumTiles:   spec.GetNumTiles(),
		MemSize:    spec.GetMemSize(),
		MaxOpc:     spec.GetMaxOpc(),
		QoS:        qosFromPB(spec.GetQos()),
		CUs:        cus,
	}, nil
}

func HWContextToPB(c xdna.HWContext) *pb.HWContext {
	return &pb.HWContext{
		Id:        uint32(c.ID),
		Client:    string(c.Client),
		Name:      c.Name,
		FwCtxId:   c.FWContextID,
		StartCol:  c.StartCol,
		NumCol:    c.NumCol,
		NumTiles:  c.NumTiles,
		MemSize:   c.MemSize,
		MaxOpc:    c.MaxOpc,
		Qos:       qosToPB(c.QoS),
		Cus:       CUConfigsToPB(c.CUs),
		Status:    uint32(c.Status),
		OldStatus: uint32(c.OldStatus),
		CreatedAt: timestamp(c.CreatedAt),
	}
}

func HWContextFromPB(c *pb.HWContext) (xdna.HWContext, error) {
	cus, err := CUConfigsFromPB(c.GetCus())
	if err != nil {
		return xdna.HWContext{}, fmt.Errorf("context %d: %w", c.GetId(), err)
	}
	return xdna.HWContext{
		ID:          xdna.ContextID(c.GetId()),
		Client:      xdna.ClientID(c.GetClient()),
		Name:        c.GetName(),
		FWContextID: c.GetFwCtxId(),
		StartCol:    c.GetStartCol(),
		NumCol:      c.GetNumCol(),
		NumTiles:    c.GetNumTiles(),
		MemSize:     c.GetMemSize(),
		MaxOpc:      c.GetMaxOpc(),
		QoS:         qosFromPB(c.GetQos()),
		CUs:         cus,
		Status:      xdna.Status(c.GetStatus()),
		OldStatus:   xdna.Status(c.GetOldStatus()),
		CreatedAt:   timeOf(c.GetCreatedAt()),
	}, nil
}

func BufferInfoToPB(b buffer.Info) *pb.BufferInfo {
	return &pb.BufferInfo{Handle: uint32(b.Handle), Client: string(b.Client), Size: int64(b.Size), Pins: b.Pins}
}

func BufferInfoFromPB(b *pb.BufferInfo) buffer.Info {
	return buffer.Info{
		Handle: xdna.BufferHandle(b.GetHandle()),
		Client: xdna.ClientID(b.GetClient()),
		Size:   int(b.GetSize()),
		Pins:   b.GetPins(),
	}
}

func JobInfoToPB(j job.Info) *pb.JobInfo {
	return &pb.JobInfo{
		Context:     uint32(j.Context),
		Seq:         j.Seq,
		Opcode:      uint32(j.Opcode),
		CuIndex:     int32(j.CUIndex),
		State:       uint32(j.State),
		SubmittedAt: timestamp(j.SubmittedAt),
		FinishedAt:  timestamp(j.FinishedAt),
	}
}

func JobInfoFromPB(j *pb.JobInfo) job.Info {
	return job.Info{
		Context:     xdna.ContextID(j.GetContext()),
		Seq:         j.GetSeq(),
		Opcode:      command.Opcode(j.GetOpcode()),
		CUIndex:     int(j.GetCuIndex()),
		State:       command.State(j.GetState()),
		SubmittedAt: timeOf(j.GetSubmittedAt()),
		FinishedAt:  timeOf(j.GetFinishedAt()),
	}
}

func HandlesToPB(hs []xdna.BufferHandle) []uint32 {
	if len(hs) == 0 {
		return nil
	}
	out := make([]uint32, len(hs))
	for i, h := range hs {
		out[i] = uint32(h)
	}
	return out
}

func HandlesFromPB(hs []uint32) []xdna.BufferHandle {
	if len(hs) == 0 {
		return nil
	}
	out := make([]xdna.BufferHandle, len(hs))
	for i, h := range hs {
		out[i] = xdna.BufferHandle(h)
	}
	return out
}
