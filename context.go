// Package xdna holds the domain types shared by the command codec, the
// resource table, the job tracker and the hardware context manager.
package xdna

import (
	"fmt"
	"time"
)

// ClientID identifies one client session. A client owns its hardware
// contexts and its buffer objects; buffers are validated against it.
type ClientID string

// ContextID identifies a hardware context. IDs are unique per device.
type ContextID uint32

// Status is the lifecycle status of a hardware context.
type Status uint32

const (
	StatusInit  Status = 0
	StatusReady Status = 1
	StatusStop  Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusInit:
		return "init"
	case StatusReady:
		return "ready"
	case StatusStop:
		return "stop"
	default:
		return fmt.Sprintf("Status(%d)", uint32(s))
	}
}

// QoS carries the quality-of-service request of a context. Zero values
// mean "no requirement".
type QoS struct {
	GOPS          uint32 `json:"gops"`
	FPS           uint32 `json:"fps"`
	DMABandwidth  uint32 `json:"dma_bandwidth"`
	Latency       uint32 `json:"latency"`
	FrameExecTime uint32 `json:"frame_exec_time"`
	Priority      uint32 `json:"priority"`
}

// CUConfig configures one compute unit of a context: the buffer
// holding the CU's PDI image and the function index within it.
type CUConfig struct {
	BO       BufferHandle `json:"bo"`
	Function uint8        `json:"function"`
}

// ContextSpec is the caller's request when creating a context.
type ContextSpec struct {
	Name string `json:"name,omitempty"`
	// Columns is the number of contiguous columns to reserve.
	Columns uint32 `json:"columns"`
	// ColumnList optionally restricts the start column to one of
	// the listed values. Empty means any start column.
	ColumnList []uint32   `json:"column_list,omitempty"`
	NumTiles   uint32     `json:"num_tiles,omitempty"`
	MemSize    uint32     `json:"mem_size,omitempty"`
	MaxOpc     uint32     `json:"max_opc,omitempty"`
	QoS        QoS        `json:"qos"`
	CUs        []CUConfig `json:"cus,omitempty"`
}

// HWContext is a snapshot of a hardware context.
type HWContext struct {
	ID          ContextID  `json:"id"`
	Client      ClientID   `json:"client"`
	Name        string     `json:"name,omitempty"`
	FWContextID uint32     `json:"fw_ctx_id"`
	StartCol    uint32     `json:"start_col"`
	NumCol      uint32     `json:"num_col"`
	NumTiles    uint32     `json:"num_tiles"`
	MemSize     uint32     `json:"mem_size"`
	MaxOpc      uint32     `json:"max_opc"`
	QoS         QoS        `json:"qos"`
	CUs         []CUConfig `json:"cus,omitempty"`
	Status      Status     `json:"status"`
	OldStatus   Status     `json:"old_status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ColMap returns the context's columns as a bitmask with bits
// [StartCol, StartCol+NumCol) set.
func (c HWContext) ColMap() uint64 {
	return ColumnMask(c.StartCol, c.NumCol)
}

// ColumnMask returns a mask with num bits set starting at start.
func ColumnMask(start, num uint32) uint64 {
	if num == 0 {
		return 0
	}
	if num >= 64 {
		return ^uint64(0) << start
	}
	return ((uint64(1) << num) - 1) << start
}
