// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

// Package slipframe reassembles the raw byte stream from a link.ByteLink
// into validated protocol.CommandFrame values using SLIP-style byte
// stuffing: frames are delimited by 0xC0, with 0xDB introducing a one-byte
// escape. See Reassembler for the framing rules and the RTS flow-control
// contract.
package slipframe
