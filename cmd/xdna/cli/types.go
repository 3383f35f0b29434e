package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frobware/go-xdna"
)

// ContextID wraps a hardware context ID with hex support.
type ContextID struct {
	Value xdna.ContextID
}

// ParseContextID parses a context ID, accepting a 0x prefix for hex.
func ParseContextID(s string) (ContextID, error) {
	v, err := parseUint32("context ID", s)
	if err != nil {
		return ContextID{}, err
	}
	return ContextID{Value: xdna.ContextID(v)}, nil
}

// BufferHandle wraps a buffer object handle with hex support.
type BufferHandle struct {
	Value xdna.BufferHandle
}

// ParseBufferHandle parses a buffer handle, accepting a 0x prefix for
// hex.
func ParseBufferHandle(s string) (BufferHandle, error) {
	v, err := parseUint32("buffer handle", s)
	if err != nil {
		return BufferHandle{}, err
	}
	return BufferHandle{Value: xdna.BufferHandle(v)}, nil
}

// CUSpec is a compute unit configuration in HANDLE[:FUNCTION] form.
type CUSpec struct {
	Value xdna.CUConfig
}

// ParseCUSpec parses HANDLE[:FUNCTION]. The function index defaults to
// zero.
func ParseCUSpec(s string) (CUSpec, error) {
	handle, fn, hasFn := strings.Cut(strings.TrimSpace(s), ":")
	bo, err := ParseBufferHandle(handle)
	if err != nil {
		return CUSpec{}, err
	}
	cu := xdna.CUConfig{BO: bo.Value}
	if hasFn {
		v, err := strconv.ParseUint(fn, 0, 8)
		if err != nil {
			return CUSpec{}, fmt.Errorf("invalid CU function %q: %w", fn, err)
		}
		cu.Function = uint8(v)
	}
	return CUSpec{Value: cu}, nil
}

func cuConfigs(specs []CUSpec) []xdna.CUConfig {
	if len(specs) == 0 {
		return nil
	}
	cus := make([]xdna.CUConfig, len(specs))
	for i, s := range specs {
		cus[i] = s.Value
	}
	return cus
}

func bufferHandles(hs []BufferHandle) []xdna.BufferHandle {
	if len(hs) == 0 {
		return nil
	}
	out := make([]xdna.BufferHandle, len(hs))
	for i, h := range hs {
		out[i] = h.Value
	}
	return out
}

func parseUint32(what, s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s cannot be empty", what)
	}

	var val uint64
	var err error

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		val, err = strconv.ParseUint(s[2:], 16, 32)
	} else {
		val, err = strconv.ParseUint(s, 10, 32)
	}

	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return uint32(val), nil
}
