// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package link

// ByteLink is the interrupt-driven byte stream between the host and the
// emulator. TryRX reports whether a byte was available without blocking;
// TX queues a byte for transmission. SetRTS and Activity drive two
// single-bit GPIO outputs: RTS is the flow-control signal, asserted
// (true) only while a reassembler Poll is actively draining the link;
// Activity drives the activity LED and carries no protocol meaning of its
// own: the reassembler switches it on for each byte it receives and off
// when it completes a frame. Transmitted bytes do not drive it.
type ByteLink interface {
	TryRX() (b byte, ok bool)
	TX(b byte)
	SetRTS(asserted bool)
	Activity(on bool)
}
