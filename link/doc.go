// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

// Package link defines ByteLink, the external collaborator the display
// emulator treats as a black box: an interrupt-driven byte stream with
// two single-bit outputs (RTS and an activity LED). The transport logic
// -- the SLIP reassembler and the command dispatcher -- talk to this
// interface only; they never touch UART registers or GPIO pins directly.
//
// Two implementations are provided: Loopback, a deterministic in-memory
// fake used throughout the test suite, and UART, a thin adapter onto a
// real serial port for cmd/crtbridged.
package link
