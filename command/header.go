// Package command decodes and encodes device command packets.
//
// A packet is a little-endian sequence of 32-bit words. The first word
// is a bit-packed header:
//
//	bits  0..3   state
//	bits  4..9   unused
//	bits 10..11  extra_cu_masks
//	bits 12..22  count (number of trailing words)
//	bits 23..27  opcode
//	bits 28..31  reserved
//
// The count trailing words hold 1+extra_cu_masks CU mask words followed
// by an opcode-specific payload. CMD_CHAIN packets carry no CU masks.
//
// State is the only field written after a packet is built; SetState
// updates it in place in the mapped buffer.
package command

import (
	"encoding/binary"
	"fmt"

	"github.com/frobware/go-xdna"
)

// WordSize is the size in bytes of one packet word.
const WordSize = 4

// Opcode selects how the payload of a packet is interpreted.
type Opcode uint32

const (
	OpStartCU  Opcode = 0
	OpStartDPU Opcode = 18
	OpCmdChain Opcode = 19
)

func (o Opcode) String() string {
	switch o {
	case OpStartCU:
		return "start_cu"
	case OpStartDPU:
		return "start_dpu"
	case OpCmdChain:
		return "cmd_chain"
	default:
		return fmt.Sprintf("Opcode(%d)", uint32(o))
	}
}

// ParseOpcode parses an opcode name as printed by String.
func ParseOpcode(s string) (Opcode, error) {
	switch s {
	case "start_cu", "start-cu":
		return OpStartCU, nil
	case "start_dpu", "start-dpu":
		return OpStartDPU, nil
	case "cmd_chain", "cmd-chain", "chain":
		return OpCmdChain, nil
	}
	return 0, fmt.Errorf("unknown opcode %q", s)
}

const (
	stateShift  = 0
	stateBits   = 4
	unusedShift = 4
	unusedBits  = 6
	extraShift  = 10
	extraBits   = 2
	countShift  = 12
	countBits   = 11
	opcodeShift = 23
	opcodeBits  = 5
	rsvdShift   = 28
	rsvdBits    = 4

	// MaxCount is the largest trailing word count a header can carry.
	MaxCount = 1<<countBits - 1
	// MaxExtraCUMasks is the largest extra_cu_masks value.
	MaxExtraCUMasks = 1<<extraBits - 1
)

func field(w uint32, shift, bits uint) uint32 {
	return (w >> shift) & (1<<bits - 1)
}

func fits(v uint32, bits uint) bool {
	return v < 1<<bits
}

// Header is the decoded header word of a packet.
type Header struct {
	State        State
	Unused       uint8
	ExtraCUMasks uint8
	Count        uint16
	Opcode       Opcode
	Reserved     uint8
}

// HeaderFromWord unpacks a header word. Every 32-bit value is a valid
// header; range checks on individual fields are left to callers.
func HeaderFromWord(w uint32) Header {
	return Header{
		State:        State(field(w, stateShift, stateBits)),
		Unused:       uint8(field(w, unusedShift, unusedBits)),
		ExtraCUMasks: uint8(field(w, extraShift, extraBits)),
		Count:        uint16(field(w, countShift, countBits)),
		Opcode:       Opcode(field(w, opcodeShift, opcodeBits)),
		Reserved:     uint8(field(w, rsvdShift, rsvdBits)),
	}
}

// DecodeHeader unpacks the first word of buf.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < WordSize {
		return Header{}, xdna.ErrMalformedHeader{Size: len(buf), Need: WordSize}
	}
	return HeaderFromWord(binary.LittleEndian.Uint32(buf)), nil
}

// Validate checks that every field fits its bit width.
func (h Header) Validate() error {
	switch {
	case !fits(uint32(h.State), stateBits):
		return fmt.Errorf("state %d exceeds %d bits", h.State, stateBits)
	case !fits(uint32(h.Unused), unusedBits):
		return fmt.Errorf("unused bits %#x exceed %d bits", h.Unused, unusedBits)
	case !fits(uint32(h.ExtraCUMasks), extraBits):
		return fmt.Errorf("extra_cu_masks %d exceeds %d", h.ExtraCUMasks, MaxExtraCUMasks)
	case !fits(uint32(h.Count), countBits):
		return fmt.Errorf("count %d exceeds %d", h.Count, MaxCount)
	case !fits(uint32(h.Opcode), opcodeBits):
		return fmt.Errorf("opcode %d exceeds %d bits", h.Opcode, opcodeBits)
	case !fits(uint32(h.Reserved), rsvdBits):
		return fmt.Errorf("reserved bits %#x exceed %d bits", h.Reserved, rsvdBits)
	}
	return nil
}

// Encode packs h into a header word. Fields wider than their bit
// width are truncated; call Validate first when that matters.
func (h Header) Encode() uint32 {
	w := (uint32(h.State) & (1<<stateBits - 1)) << stateShift
	w |= (uint32(h.Unused) & (1<<unusedBits - 1)) << unusedShift
	w |= (uint32(h.ExtraCUMasks) & (1<<extraBits - 1)) << extraShift
	w |= (uint32(h.Count) & (1<<countBits - 1)) << countShift
	w |= (uint32(h.Opcode) & (1<<opcodeBits - 1)) << opcodeShift
	w |= (uint32(h.Reserved) & (1<<rsvdBits - 1)) << rsvdShift
	return w
}

// CUMaskCount returns the number of CU mask words that precede the
// payload: none for CMD_CHAIN, otherwise 1+extra.
func CUMaskCount(op Opcode, extra uint8) int {
	if op == OpCmdChain {
		return 0
	}
	return 1 + int(extra)
}

// CUMaskCount returns the number of CU mask words for h.
func (h Header) CUMaskCount() int {
	return CUMaskCount(h.Opcode, h.ExtraCUMasks)
}

// PayloadSize returns the payload size in bytes, zero when count does
// not exceed the CU mask word count.
func (h Header) PayloadSize() uint32 {
	masks := h.CUMaskCount()
	if int(h.Count) <= masks {
		return 0
	}
	return uint32(int(h.Count)-masks) * WordSize
}

// packetSize returns the bytes a packet with header h occupies.
func (h Header) packetSize() int {
	return WordSize * (1 + int(h.Count))
}
