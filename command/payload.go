package command

import (
	"encoding/binary"
	"fmt"

	"github.com/frobware/go-xdna"
)

// Payload is the opcode-specific interpretation of a packet's payload
// words. The concrete type is one of StartCU, StartDPU or Chain.
type Payload interface {
	Opcode() Opcode
	words() []uint32
}

// StartCU is the payload of OpStartCU: plain kernel arguments.
type StartCU struct {
	Args []uint32
}

func (StartCU) Opcode() Opcode { return OpStartCU }

func (p StartCU) words() []uint32 { return p.Args }

// startDPUWords is the fixed prefix of a START_DPU payload.
const startDPUWords = 4

// StartDPU is the payload of OpStartDPU: an instruction buffer followed
// by regular kernel arguments.
type StartDPU struct {
	InstructionBuffer     uint64
	InstructionBufferSize uint32
	// Chained must be zero.
	Chained uint32
	Args    []uint32
}

func (StartDPU) Opcode() Opcode { return OpStartDPU }

func (p StartDPU) words() []uint32 {
	w := []uint32{
		uint32(p.InstructionBuffer),
		uint32(p.InstructionBuffer >> 32),
		p.InstructionBufferSize,
		p.Chained,
	}
	return append(w, p.Args...)
}

// Validate rejects a payload with a non-zero Chained field.
func (p StartDPU) Validate() error {
	if p.Chained != 0 {
		return fmt.Errorf("start_dpu chained field must be zero, got %d", p.Chained)
	}
	return nil
}

// chainHeaderWords is command_count, submit_index, error_index and
// three reserved words.
const chainHeaderWords = 6

// Chain is the payload of OpCmdChain: an ordered list of references to
// other command buffers executed as one submission.
type Chain struct {
	CommandCount uint32
	SubmitIndex  uint32
	// ErrorIndex is written by the dispatcher to name the failing
	// sub-command; the codec never computes it.
	ErrorIndex uint32
	Reserved   [3]uint32
	Commands   []uint64
}

func (Chain) Opcode() Opcode { return OpCmdChain }

func (p Chain) words() []uint32 {
	w := []uint32{p.CommandCount, p.SubmitIndex, p.ErrorIndex, p.Reserved[0], p.Reserved[1], p.Reserved[2]}
	for _, ref := range p.Commands {
		w = append(w, uint32(ref), uint32(ref>>32))
	}
	return w
}

// Pending returns the references still to execute: Commands from
// SubmitIndex up to CommandCount.
func (p Chain) Pending() []uint64 {
	if p.SubmitIndex >= p.CommandCount {
		return nil
	}
	return p.Commands[p.SubmitIndex:p.CommandCount]
}

// DecodePayload interprets the payload of c according to its opcode.
func (c Command) DecodePayload() (Payload, error) {
	words := c.PayloadWords()
	switch c.Header.Opcode {
	case OpStartCU:
		return decodeStartCU(words), nil
	case OpStartDPU:
		return decodeStartDPU(words)
	case OpCmdChain:
		return decodeChain(words)
	default:
		return nil, fmt.Errorf("unsupported opcode %s", c.Header.Opcode)
	}
}

func decodeStartCU(words []uint32) StartCU {
	return StartCU{Args: append([]uint32(nil), words...)}
}

func decodeStartDPU(words []uint32) (StartDPU, error) {
	if len(words) < startDPUWords {
		return StartDPU{}, xdna.ErrMalformedHeader{Size: len(words) * WordSize, Need: startDPUWords * WordSize}
	}
	p := StartDPU{
		InstructionBuffer:     uint64(words[0]) | uint64(words[1])<<32,
		InstructionBufferSize: words[2],
		Chained:               words[3],
	}
	if len(words) > startDPUWords {
		p.Args = append([]uint32(nil), words[startDPUWords:]...)
	}
	return p, nil
}

func decodeChain(words []uint32) (Chain, error) {
	if len(words) < chainHeaderWords {
		return Chain{}, xdna.ErrMalformedHeader{Size: len(words) * WordSize, Need: chainHeaderWords * WordSize}
	}
	p := Chain{
		CommandCount: words[0],
		SubmitIndex:  words[1],
		ErrorIndex:   words[2],
		Reserved:     [3]uint32{words[3], words[4], words[5]},
	}
	need := chainHeaderWords + 2*int(p.CommandCount)
	if len(words) < need {
		return Chain{}, xdna.ErrMalformedHeader{Size: len(words) * WordSize, Need: need * WordSize}
	}
	p.Commands = make([]uint64, p.CommandCount)
	for i := range p.Commands {
		lo := words[chainHeaderWords+2*i]
		hi := words[chainHeaderWords+2*i+1]
		p.Commands[i] = uint64(lo) | uint64(hi)<<32
	}
	return p, nil
}

// ExpandChain returns the command references of the CMD_CHAIN packet in
// buf, in array order starting at submit_index.
func ExpandChain(buf []byte) ([]uint64, error) {
	c, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	if c.Header.Opcode != OpCmdChain {
		return nil, fmt.Errorf("expand chain: packet opcode is %s", c.Header.Opcode)
	}
	chain, err := decodeChain(c.PayloadWords())
	if err != nil {
		return nil, err
	}
	if chain.SubmitIndex > chain.CommandCount {
		return nil, fmt.Errorf("expand chain: submit_index %d beyond command_count %d", chain.SubmitIndex, chain.CommandCount)
	}
	return chain.Pending(), nil
}

// SetChainErrorIndex records the index of the failing sub-command in
// the CMD_CHAIN packet in buf.
func SetChainErrorIndex(buf []byte, idx uint32) error {
	h, err := DecodeHeader(buf)
	if err != nil {
		return err
	}
	if h.Opcode != OpCmdChain {
		return fmt.Errorf("set error index: packet opcode is %s", h.Opcode)
	}
	// error_index is the third payload word; chains have no CU masks.
	off := WordSize * (1 + 2)
	if h.Count < 3 || len(buf) < off+WordSize {
		return xdna.ErrMalformedHeader{Size: len(buf), Need: off + WordSize}
	}
	binary.LittleEndian.PutUint32(buf[off:], idx)
	return nil
}
