// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package protocol

import "fmt"

// FrameLen is the number of payload bytes in a decoded command frame,
// not counting SLIP framing.
const FrameLen = 7

// Queue identifies which logical handler a reassembled command is routed
// to. It occupies the top two bits of the wire opcode byte.
type Queue uint8

// Queue selector values, taken directly from the source constants.
const (
	QueueVGA    Queue = 0
	QueueOther1 Queue = 1
	QueueSystem Queue = 2
	QueueAbort  Queue = 3

	// QueueOther2 is defined by the original firmware but is unreachable:
	// the wire field carrying the selector is only two bits wide, and
	// QueueSystem already claims value 2. No frame ever decodes to this
	// value. Preserved as documented dead code rather than silently
	// dropped, per the source's own ambiguity.
	QueueOther2 Queue = 2
)

func (q Queue) String() string {
	switch q {
	case QueueVGA:
		return "VGA"
	case QueueOther1:
		return "OTHER1"
	case QueueSystem:
		return "SYSTEM"
	case QueueAbort:
		return "ABORT"
	default:
		return fmt.Sprintf("Queue(%d)", uint8(q))
	}
}

// Opcode identifies the operation carried by a command frame. Only the
// low six bits of the wire's first byte are significant.
type Opcode uint8

// Opcodes understood on the VGA queue, plus ECHO which only ever arrives
// on the SYSTEM queue. The source names these VID_MODE, DSP_PAGE, CUR_POS,
// CUR_MODE, PUT_CHRA, GET_CHR, PUT_CHR, SCR_UP, SCR_DOWN, PUT_PIX, GET_PIX,
// PALETTE, CLR_SCR and ECHO; it does not fix their numeric wire values, so
// this assignment is this implementation's own, contiguous from zero.
const (
	OpSetMode Opcode = iota
	OpSetPage
	OpSetCursorPos
	OpSetCursorMode
	OpPutCharAttr
	OpGetChar
	OpPutChar
	OpScrollUp
	OpScrollDown
	OpPutPixel
	OpGetPixel
	OpPalette
	OpClearScreen
	OpEcho
)

var opcodeNames = map[Opcode]string{
	OpSetMode:       "VID_MODE",
	OpSetPage:       "DSP_PAGE",
	OpSetCursorPos:  "CUR_POS",
	OpSetCursorMode: "CUR_MODE",
	OpPutCharAttr:   "PUT_CHRA",
	OpGetChar:       "GET_CHR",
	OpPutChar:       "PUT_CHR",
	OpScrollUp:      "SCR_UP",
	OpScrollDown:    "SCR_DOWN",
	OpPutPixel:      "PUT_PIX",
	OpGetPixel:      "GET_PIX",
	OpPalette:       "PALETTE",
	OpClearScreen:   "CLR_SCR",
	OpEcho:          "ECHO",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%#02x)", uint8(o))
}

// CommandFrame is a reassembled, validated 7-byte command. Queue is
// metadata for the consumer, never a priority; Op is the opcode with the
// queue bits already stripped.
type CommandFrame struct {
	Queue Queue
	Op    Opcode
	B1    byte
	B2    byte
	B3    byte
	B4    byte
	B5    byte
	B6    byte
}

// DecodeFrame splits a raw 7-byte wire payload into a CommandFrame. raw[0]
// packs the queue selector into bits 6-7 and the opcode into bits 0-5.
func DecodeFrame(raw [FrameLen]byte) CommandFrame {
	return CommandFrame{
		Queue: Queue(raw[0]>>6) & 0x3,
		Op:    Opcode(raw[0] & 0x3F),
		B1:    raw[1],
		B2:    raw[2],
		B3:    raw[3],
		B4:    raw[4],
		B5:    raw[5],
		B6:    raw[6],
	}
}

// Encode packs a CommandFrame back into its 7-byte wire representation.
// Encode(DecodeFrame(raw)) == raw for any raw whose opcode fits six bits.
func (f CommandFrame) Encode() [FrameLen]byte {
	return [FrameLen]byte{
		byte(f.Queue&0x3)<<6 | byte(f.Op&0x3F),
		f.B1, f.B2, f.B3, f.B4, f.B5, f.B6,
	}
}

// U16 reassembles a little-endian-by-position 16-bit field from a high
// byte and a low byte, as used by PUT_PIX/GET_PIX's (hi, lo) coordinate
// pairs: x = U16(b4, b3), y = U16(b6, b5).
func U16(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
