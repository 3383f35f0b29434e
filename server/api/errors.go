package api

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/server/pb"
)

const (
	kindMalformedHeader   = "malformed_header"
	kindInvalidContext    = "invalid_context"
	kindInvalidBuffer     = "invalid_buffer"
	kindResourceExhausted = "resource_exhausted"
	kindUnknownSequence   = "unknown_sequence"
	kindContextBusy       = "context_busy"
)

// describe maps err to a status code and, for domain errors, a detail.
func describe(err error) (codes.Code, *pb.ErrorDetail) {
	var (
		buf       xdna.ErrInvalidBuffer
		malformed xdna.ErrMalformedHeader
		invalid   xdna.ErrInvalidContext
		exhausted xdna.ErrResourceExhausted
		unknown   xdna.ErrUnknownSequence
		busy      xdna.ErrContextBusy
	)
	switch {
	case errors.As(err, &buf):
		d := &pb.ErrorDetail{Kind: kindInvalidBuffer, Handle: uint32(buf.Handle), Reason: buf.Reason}
		if buf.Err != nil {
			d.Cause = buf.Err.Error()
			if errors.As(buf.Err, &malformed) {
				d.Size, d.Need = int64(malformed.Size), int64(malformed.Need)
			}
		}
		return codes.InvalidArgument, d
	case errors.As(err, &malformed):
		return codes.InvalidArgument, &pb.ErrorDetail{Kind: kindMalformedHeader, Size: int64(malformed.Size), Need: int64(malformed.Need)}
	case errors.As(err, &invalid):
		code := codes.NotFound
		if invalid.Exists {
			code = codes.FailedPrecondition
		}
		return code, &pb.ErrorDetail{Kind: kindInvalidContext, Context: uint32(invalid.ID), Status: uint32(invalid.Status), Exists: invalid.Exists}
	case errors.As(err, &exhausted):
		return codes.ResourceExhausted, &pb.ErrorDetail{Kind: kindResourceExhausted, Requested: exhausted.Requested, Free: exhausted.Free}
	case errors.As(err, &unknown):
		return codes.OutOfRange, &pb.ErrorDetail{Kind: kindUnknownSequence, Context: uint32(unknown.Context), Seq: unknown.Seq, Reclaimed: unknown.Reclaimed}
	case errors.As(err, &busy):
		return codes.FailedPrecondition, &pb.ErrorDetail{Kind: kindContextBusy, Context: uint32(busy.ID), Active: int64(busy.Active)}
	case errors.Is(err, context.Canceled):
		return codes.Canceled, nil
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded, nil
	}
	return codes.Internal, nil
}

// ServerError converts err into a status error. Domain errors carry an
// ErrorDetail in the status details. Status errors pass through and a
// nil err stays nil.
func ServerError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code, detail := describe(err)
	st := status.New(code, err.Error())
	if detail != nil {
		if withDetail, derr := st.WithDetails(detail); derr == nil {
			st = withDetail
		}
	}
	return st.Err()
}

// ClientError rebuilds the domain error of a failed call from its
// status details. Errors without a detail are returned unchanged.
func ClientError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, d := range st.Details() {
		if detail, ok := d.(*pb.ErrorDetail); ok {
			if derr := DetailError(detail); derr != nil {
				return derr
			}
		}
	}
	return err
}

// DetailError returns the domain error d describes, or nil for an
// unknown kind.
func DetailError(d *pb.ErrorDetail) error {
	switch d.GetKind() {
	case kindMalformedHeader:
		return xdna.ErrMalformedHeader{Size: int(d.GetSize()), Need: int(d.GetNeed())}
	case kindInvalidBuffer:
		e := xdna.ErrInvalidBuffer{Handle: xdna.BufferHandle(d.GetHandle()), Reason: d.GetReason()}
		switch {
		case d.GetNeed() > 0:
			e.Err = xdna.ErrMalformedHeader{Size: int(d.GetSize()), Need: int(d.GetNeed())}
		case d.GetCause() != "":
			e.Err = errors.New(d.GetCause())
		}
		return e
	case kindInvalidContext:
		return xdna.ErrInvalidContext{ID: xdna.ContextID(d.GetContext()), Status: xdna.Status(d.GetStatus()), Exists: d.GetExists()}
	case kindResourceExhausted:
		return xdna.ErrResourceExhausted{Requested: d.GetRequested(), Free: d.GetFree()}
	case kindUnknownSequence:
		return xdna.ErrUnknownSequence{Context: xdna.ContextID(d.GetContext()), Seq: d.GetSeq(), Reclaimed: d.GetReclaimed()}
	case kindContextBusy:
		return xdna.ErrContextBusy{ID: xdna.ContextID(d.GetContext()), Active: int(d.GetActive())}
	}
	return nil
}
