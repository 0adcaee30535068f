// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

// Package crtbridge is a container for the packages implementing a
// serial-driven CGA/MDA-class display adapter emulator.
//
// The two load-bearing packages are slipframe/dispatch (the serial command
// transport) and biosvideo (the display emulation engine). See
// cmd/crtbridged for the program that wires them to a real UART and
// framebuffer.
package crtbridge
