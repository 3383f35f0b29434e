package xdna

import "fmt"

// ErrMalformedHeader is returned when a command buffer is too short to
// hold the header word or the trailing words the header declares.
type ErrMalformedHeader struct {
	Size int // bytes available
	Need int // bytes required
}

func (e ErrMalformedHeader) Error() string {
	return fmt.Sprintf("malformed command header: buffer has %d bytes, need %d", e.Size, e.Need)
}

// ErrInvalidContext is returned when a hardware context does not exist
// or is not in a state that accepts the requested operation.
type ErrInvalidContext struct {
	ID     ContextID
	Status Status
	Exists bool
}

func (e ErrInvalidContext) Error() string {
	if !e.Exists {
		return fmt.Sprintf("hardware context %d does not exist", e.ID)
	}
	return fmt.Sprintf("hardware context %d is %s, not ready", e.ID, e.Status)
}

// ErrInvalidBuffer is returned when a buffer handle cannot be resolved,
// is too small, or holds a command that cannot be admitted.
type ErrInvalidBuffer struct {
	Handle BufferHandle
	Reason string
	// Err is the underlying decode error, if any.
	Err error
}

func (e ErrInvalidBuffer) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid buffer %d: %s: %v", e.Handle, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid buffer %d: %s", e.Handle, e.Reason)
}

func (e ErrInvalidBuffer) Unwrap() error { return e.Err }

// ErrResourceExhausted is returned when no contiguous column range of
// the requested width is free on the device.
type ErrResourceExhausted struct {
	Requested uint32
	Free      uint32
}

func (e ErrResourceExhausted) Error() string {
	return fmt.Sprintf("no contiguous range of %d columns available (%d columns free)", e.Requested, e.Free)
}

// ErrUnknownSequence is returned by wait when the sequence number was
// never issued by the context, or was issued and has since been
// reclaimed below the context's low-water mark.
type ErrUnknownSequence struct {
	Context   ContextID
	Seq       uint64
	Reclaimed bool
}

func (e ErrUnknownSequence) Error() string {
	if e.Reclaimed {
		return fmt.Sprintf("sequence %d on context %d has been reclaimed", e.Seq, e.Context)
	}
	return fmt.Sprintf("sequence %d was never issued on context %d", e.Seq, e.Context)
}

// ErrContextBusy is returned when a context is destroyed without force
// while it still has queued, submitted or running jobs.
type ErrContextBusy struct {
	ID     ContextID
	Active int
}

func (e ErrContextBusy) Error() string {
	return fmt.Sprintf("hardware context %d has %d active jobs", e.ID, e.Active)
}
