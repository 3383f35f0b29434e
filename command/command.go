package command

import (
	"encoding/binary"
	"math/bits"

	"github.com/frobware/go-xdna"
)

// Command is a decoded packet: the header and its count trailing words.
type Command struct {
	Header Header
	Data   []uint32
}

// Parse decodes a packet from buf. The buffer must hold the header and
// all count trailing words; bytes beyond the packet are ignored.
func Parse(buf []byte) (Command, error) {
	h, err := DecodeHeader(buf)
	if err != nil {
		return Command{}, err
	}
	if need := h.packetSize(); len(buf) < need {
		return Command{}, xdna.ErrMalformedHeader{Size: len(buf), Need: need}
	}
	data := make([]uint32, h.Count)
	for i := range data {
		data[i] = binary.LittleEndian.Uint32(buf[WordSize*(1+i):])
	}
	return Command{Header: h, Data: data}, nil
}

// Marshal encodes c. The header count is taken from len(c.Data).
func (c Command) Marshal() []byte {
	h := c.Header
	h.Count = uint16(len(c.Data))
	buf := make([]byte, WordSize*(1+len(c.Data)))
	binary.LittleEndian.PutUint32(buf, h.Encode())
	for i, w := range c.Data {
		binary.LittleEndian.PutUint32(buf[WordSize*(1+i):], w)
	}
	return buf
}

// CUMasks returns the CU mask words present in the packet.
func (c Command) CUMasks() []uint32 {
	n := min(c.Header.CUMaskCount(), len(c.Data))
	return c.Data[:n]
}

// PayloadWords returns the words after the CU masks, or nil when the
// packet has no payload.
func (c Command) PayloadWords() []uint32 {
	masks := c.Header.CUMaskCount()
	if len(c.Data) <= masks {
		return nil
	}
	return c.Data[masks:]
}

// CUIndex returns the position of the lowest set bit within the first
// non-zero CU mask word. Later mask words are never consulted. ok is
// false for CMD_CHAIN and when every mask word is zero.
func (c Command) CUIndex() (idx int, ok bool) {
	if c.Header.Opcode == OpCmdChain {
		return -1, false
	}
	return firstSetBit(c.CUMasks())
}

func firstSetBit(masks []uint32) (int, bool) {
	for _, m := range masks {
		if m != 0 {
			return bits.TrailingZeros32(m), true
		}
	}
	return -1, false
}

// GetPayload returns a view of the payload bytes of the packet in buf and
// their size. A packet whose count does not exceed its CU mask count
// has no payload: the view is nil and size is zero, which is not an
// error.
func GetPayload(buf []byte) ([]byte, uint32, error) {
	h, err := DecodeHeader(buf)
	if err != nil {
		return nil, 0, err
	}
	size := h.PayloadSize()
	if size == 0 {
		return nil, 0, nil
	}
	if need := h.packetSize(); len(buf) < need {
		return nil, 0, xdna.ErrMalformedHeader{Size: len(buf), Need: need}
	}
	start := WordSize * (1 + h.CUMaskCount())
	return buf[start : start+int(size)], size, nil
}

// CUIndex returns the CU a packet in buf targets. See Command.CUIndex.
func CUIndex(buf []byte) (int, bool, error) {
	h, err := DecodeHeader(buf)
	if err != nil {
		return -1, false, err
	}
	if h.Opcode == OpCmdChain {
		return -1, false, nil
	}
	n := min(h.CUMaskCount(), int(h.Count))
	if need := WordSize * (1 + n); len(buf) < need {
		return -1, false, xdna.ErrMalformedHeader{Size: len(buf), Need: need}
	}
	masks := make([]uint32, n)
	for i := range masks {
		masks[i] = binary.LittleEndian.Uint32(buf[WordSize*(1+i):])
	}
	idx, ok := firstSetBit(masks)
	return idx, ok, nil
}

// GetState reads the state field of the packet in buf.
func GetState(buf []byte) (State, error) {
	h, err := DecodeHeader(buf)
	if err != nil {
		return StateInvalid, err
	}
	return h.State, nil
}

// SetState rewrites the state field of the packet in buf, leaving every
// other header bit untouched.
func SetState(buf []byte, s State) error {
	if len(buf) < WordSize {
		return xdna.ErrMalformedHeader{Size: len(buf), Need: WordSize}
	}
	w := binary.LittleEndian.Uint32(buf)
	w &^= (1<<stateBits - 1) << stateShift
	w |= (uint32(s) & (1<<stateBits - 1)) << stateShift
	binary.LittleEndian.PutUint32(buf, w)
	return nil
}
