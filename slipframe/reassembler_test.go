// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package slipframe

import (
	"io"
	"log"
	"testing"

	"github.com/gocrt/crtbridge/link"
	"github.com/gocrt/crtbridge/protocol"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestPollEmptyLinkReturnsZero(t *testing.T) {
	l := link.NewLoopback(nil)
	r := New(l, quietLogger())

	_, n := r.Poll()
	if n != 0 {
		t.Fatalf("n = %d, want 0", n)
	}
	if len(l.RTSLog) != 2 || l.RTSLog[0] != true || l.RTSLog[1] != false {
		t.Fatalf("RTSLog = %v, want [true false]", l.RTSLog)
	}
}

func TestPollSimpleFrame(t *testing.T) {
	l := link.NewLoopback([]byte{0x03, 1, 2, 3, 4, 5, 6, frameDelimiter})
	r := New(l, quietLogger())

	f, n := r.Poll()
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	want := protocol.DecodeFrame([7]byte{0x03, 1, 2, 3, 4, 5, 6})
	if f != want {
		t.Fatalf("frame = %+v, want %+v", f, want)
	}
}

// TestSLIPEscapeSequence confirms an escaped END byte reassembles into a
// frame with cmd=0xC0 (queue=ABORT) followed by six zero parameter
// bytes, for a valid 7-byte frame.
func TestSLIPEscapeSequence(t *testing.T) {
	raw := []byte{frameDelimiter, escape, escEnd, 0, 0, 0, 0, 0, 0, frameDelimiter}
	l := link.NewLoopback(raw)
	r := New(l, quietLogger())

	f, n := r.Poll()
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if f.Queue != protocol.QueueAbort {
		t.Fatalf("Queue = %v, want ABORT", f.Queue)
	}
	if f.Op != protocol.OpSetMode { // cmd byte 0xC0, opcode bits are 0
		t.Fatalf("Op = %v, want %v", f.Op, protocol.OpSetMode)
	}
}

func TestEscEscDecodesToEscapeByte(t *testing.T) {
	raw := []byte{escape, escEsc, 1, 2, 3, 4, 5, 6, frameDelimiter}
	l := link.NewLoopback(raw)
	r := New(l, quietLogger())

	f, n := r.Poll()
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if f.Queue != protocol.Queue(escape>>6)&0x3 || f.Op != protocol.Opcode(escape&0x3F) {
		t.Fatalf("escaped byte not decoded back to 0x%02x: got queue=%v op=%v", escape, f.Queue, f.Op)
	}
}

func TestBackToBackEndBytesCollapse(t *testing.T) {
	raw := []byte{frameDelimiter, frameDelimiter, frameDelimiter, 1, 2, 3, 4, 5, 6, 7, frameDelimiter}
	l := link.NewLoopback(raw)
	r := New(l, quietLogger())

	f, n := r.Poll()
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if f.B1 != 2 || f.B2 != 3 {
		t.Fatalf("frame = %+v, unexpected payload", f)
	}
}

func TestMalformedFrameDropsAndLinkStaysReceptive(t *testing.T) {
	// A short (5-byte) frame is dropped, then a valid one follows.
	raw := []byte{1, 2, 3, 4, 5, frameDelimiter, 10, 20, 30, 40, 50, 60, 70, frameDelimiter}
	l := link.NewLoopback(raw)
	r := New(l, quietLogger())

	f, n := r.Poll()
	if n != 1 {
		t.Fatalf("n = %d, want 1 (malformed frame should be silently dropped, not returned)", n)
	}
	if f.B1 != 20 {
		t.Fatalf("frame = %+v, want the second, valid frame", f)
	}
}

func TestOverflowDropsFrameAndRecovers(t *testing.T) {
	// 8 bytes with no delimiter overflow the 7-byte buffer; recovery then
	// lets a subsequent valid frame through.
	raw := []byte{1, 2, 3, 4, 5, 6, 7, 8, 10, 20, 30, 40, 50, 60, 70, frameDelimiter}
	l := link.NewLoopback(raw)
	r := New(l, quietLogger())

	f, n := r.Poll()
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if f.B1 != 20 {
		t.Fatalf("frame = %+v, want the post-overflow frame", f)
	}
}

func TestStateReporting(t *testing.T) {
	l := link.NewLoopback(nil)
	r := New(l, quietLogger())

	if r.State() != StateIdle {
		t.Fatalf("initial state = %v, want Idle", r.State())
	}
	r.feed(1)
	if r.State() != StateInFrame {
		t.Fatalf("state after one byte = %v, want InFrame", r.State())
	}
	r.feed(escape)
	if r.State() != StateEscPending {
		t.Fatalf("state after ESC = %v, want EscPending", r.State())
	}
}
