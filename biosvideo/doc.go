// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

// Package biosvideo implements the mode/page/font state machine that turns
// BIOS-call-shaped commands into pixel operations on a linear 8-bpp frame
// buffer. It owns the active page, the parallel text shadow used by text
// modes, the color and monochrome attribute rules, scrolling, and an
// asynchronous software cursor blinker.
//
// Engine is the single entry point: Emulate consumes one protocol.CommandFrame
// at a time and TickCursor advances the blink state machine. Both are
// synchronous and expect to run on a single goroutine, matching the
// cooperative main loop that owns them.
package biosvideo
