// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package protocol

import "testing"

func TestDecodeFrameQueueSelector(t *testing.T) {
	// cmd=0xC0 decodes to queue selector 3 (ABORT).
	raw := [FrameLen]byte{0xC0, 0, 0, 0, 0, 0, 0}
	f := DecodeFrame(raw)
	if f.Queue != QueueAbort {
		t.Fatalf("Queue = %v, want %v", f.Queue, QueueAbort)
	}
	if f.Op != OpSetMode {
		t.Fatalf("Op = %v, want %v", f.Op, OpSetMode)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	type TestCase struct {
		name  string
		frame CommandFrame
	}

	testCases := []TestCase{
		{name: "zero", frame: CommandFrame{}},
		{name: "put char attr", frame: CommandFrame{Queue: QueueVGA, Op: OpPutCharAttr, B1: 0, B2: 'A', B3: 0, B4: 0, B6: 0x07}},
		{name: "max fields", frame: CommandFrame{Queue: QueueAbort, Op: 0x3F, B1: 0xFF, B2: 0xFF, B3: 0xFF, B4: 0xFF, B5: 0xFF, B6: 0xFF}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := tc.frame.Encode()
			got := DecodeFrame(raw)
			if got != tc.frame {
				t.Fatalf("round trip mismatch: got %+v, want %+v", got, tc.frame)
			}
		})
	}
}

func TestU16(t *testing.T) {
	if v := U16(0x01, 0x02); v != 0x0102 {
		t.Fatalf("U16(0x01, 0x02) = %#04x, want 0x0102", v)
	}
}
