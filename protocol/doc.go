// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

// Package protocol defines the wire shape of the host-to-emulator command
// link: the fixed 7-byte command frame, the 2-bit queue selector packed
// into the top bits of the opcode byte, and the opcode set understood by
// the display engine.
package protocol
