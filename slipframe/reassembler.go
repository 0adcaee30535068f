// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package slipframe

import (
	"log"

	"github.com/gocrt/crtbridge/protocol"
)

// SLIP framing bytes.
const (
	frameDelimiter byte = 0xC0 // END
	escape         byte = 0xDB // ESC
	escEnd         byte = 0xDC // ESC_END -> END
	escEsc         byte = 0xDD // ESC_ESC -> ESC
)

// Link is the narrow slice of link.ByteLink the reassembler needs: it
// never transmits, it only drains RX, reports activity, and asserts RTS
// for the duration of a Poll.
type Link interface {
	TryRX() (b byte, ok bool)
	SetRTS(asserted bool)
	Activity(on bool)
}

// State names the reassembler's four logical states. The reassembler
// itself tracks a byte count and an escape-pending flag, and
// Reassembler.State derives the current State from those two.
type State int

const (
	StateIdle State = iota
	StateInFrame
	StateEscPending
	StateOverflowRecovery
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateInFrame:
		return "InFrame"
	case StateEscPending:
		return "EscPending"
	case StateOverflowRecovery:
		return "OverflowRecovery"
	default:
		return "Unknown"
	}
}

// Reassembler turns a byte stream into 7-byte command frames. It holds no
// reference to anything beyond its Link; all command parsing happens here,
// in the main loop's thread, never in an interrupt handler.
type Reassembler struct {
	link   Link
	logger *log.Logger

	buf        [protocol.FrameLen]byte
	count      int
	escPending bool
}

// New creates a Reassembler draining l. A nil logger defaults to
// log.Default().
func New(l Link, logger *log.Logger) *Reassembler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reassembler{link: l, logger: logger}
}

// State reports the reassembler's current logical state, derived from its
// internal counters. It never holds StateOverflowRecovery between Poll
// calls: overflow is handled and recovered from within a single feed.
func (r *Reassembler) State() State {
	switch {
	case r.escPending:
		return StateEscPending
	case r.count > 0:
		return StateInFrame
	default:
		return StateIdle
	}
}

// Poll drains link until it produces exactly one complete, valid frame or
// the link runs out of bytes, whichever comes first. RTS is asserted for
// the duration of the call and deasserted before it returns, signaling to
// the host that the reassembler is actively draining the link. The
// returned int is 1 if a frame was produced, 0 otherwise.
func (r *Reassembler) Poll() (frame protocol.CommandFrame, n int) {
	r.link.SetRTS(true)
	defer r.link.SetRTS(false)

	for {
		b, ok := r.link.TryRX()
		if !ok {
			return protocol.CommandFrame{}, 0
		}
		r.link.Activity(true)
		if f, produced := r.feed(b); produced {
			r.link.Activity(false)
			return f, 1
		}
	}
}

// feed processes one byte and reports whether it completed a valid frame.
func (r *Reassembler) feed(b byte) (protocol.CommandFrame, bool) {
	if r.escPending {
		r.escPending = false
		switch b {
		case escEnd:
			b = frameDelimiter
		case escEsc:
			b = escape
		}
		// Any other byte following ESC is stored literally; this is
		// implementation-defined behavior inherited from the source.
		return r.store(b)
	}

	switch b {
	case frameDelimiter:
		if r.count == 0 {
			// Back-to-back END bytes resynchronize the host; ignore.
			return protocol.CommandFrame{}, false
		}
		return r.finish()
	case escape:
		r.escPending = true
		return protocol.CommandFrame{}, false
	default:
		return r.store(b)
	}
}

func (r *Reassembler) store(b byte) (protocol.CommandFrame, bool) {
	if r.count == len(r.buf) {
		r.logger.Printf("slipframe: ERR buffer overflow, discarding frame")
		r.reset()
		return protocol.CommandFrame{}, false
	}
	r.buf[r.count] = b
	r.count++
	return protocol.CommandFrame{}, false
}

func (r *Reassembler) finish() (protocol.CommandFrame, bool) {
	n := r.count
	var raw [protocol.FrameLen]byte
	copy(raw[:], r.buf[:n])
	r.reset()

	if n != protocol.FrameLen {
		r.logger.Printf("slipframe: ERR malformed frame: got %d bytes, want %d", n, protocol.FrameLen)
		return protocol.CommandFrame{}, false
	}
	return protocol.DecodeFrame(raw), true
}

func (r *Reassembler) reset() {
	r.count = 0
	r.escPending = false
}
