package command

import "fmt"

// New builds a packet in state NEW carrying cuMasks followed by the
// encoded payload p. CMD_CHAIN packets must be built with no masks.
func New(cuMasks []uint32, p Payload) (Command, error) {
	op := p.Opcode()
	if op == OpCmdChain && len(cuMasks) != 0 {
		return Command{}, fmt.Errorf("cmd_chain packets carry no CU masks")
	}
	if op != OpCmdChain && (len(cuMasks) == 0 || len(cuMasks) > 1+MaxExtraCUMasks) {
		return Command{}, fmt.Errorf("need 1 to %d CU mask words, got %d", 1+MaxExtraCUMasks, len(cuMasks))
	}
	data := append(append([]uint32(nil), cuMasks...), p.words()...)
	if len(data) > MaxCount {
		return Command{}, fmt.Errorf("packet needs %d words, limit is %d", len(data), MaxCount)
	}
	var extra uint8
	if len(cuMasks) > 0 {
		extra = uint8(len(cuMasks) - 1)
	}
	return Command{
		Header: Header{
			State:        StateNew,
			ExtraCUMasks: extra,
			Count:        uint16(len(data)),
			Opcode:       op,
		},
		Data: data,
	}, nil
}

// NewChain builds a CMD_CHAIN packet referencing cmds, starting
// execution at submitIndex.
func NewChain(submitIndex uint32, cmds []uint64) (Command, error) {
	return New(nil, Chain{
		CommandCount: uint32(len(cmds)),
		SubmitIndex:  submitIndex,
		Commands:     cmds,
	})
}

// CUsPerMask is the number of compute units one mask word can select.
// A packet's CU index is a bit position within its first non-zero mask
// word, so it is always below this.
const CUsPerMask = 32

// CUMask returns the single mask word selecting CU idx. It returns nil,
// which New rejects, when idx is outside [0, CUsPerMask).
func CUMask(idx int) []uint32 {
	if idx < 0 || idx >= CUsPerMask {
		return nil
	}
	return []uint32{1 << idx}
}
