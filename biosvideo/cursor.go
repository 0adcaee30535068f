// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

// Clock is the monotonic microsecond counter TickCursor measures blink
// intervals against. A free-running hardware timer implements it in
// production; tests supply a fake that advances on demand.
type Clock interface {
	NowMicros() uint32
}

// blinkIntervalMicros is the cursor toggle period.
const blinkIntervalMicros = 250000

// cursor is the software text cursor's blink state machine.
type cursor struct {
	show               bool
	startLine, endLine byte
	col, row           int
	colPrev, rowPrev   int
	blinkOn            bool
	lastToggle         uint32
}

// cursorRedraw describes the single re-blit TickCursor must perform, or is
// nil if no redraw is due yet.
type cursorRedraw struct {
	col, row int
	on       bool
}

// setMode applies SET_CURSOR_MODE's scan-line range. The cursor is hidden
// exactly when top=0x20, bot=0x00, matching the BIOS's documented
// hide-cursor sentinel.
func (c *cursor) setMode(top, bot byte) {
	c.startLine = top
	c.endLine = bot
	c.show = !(top == 0x20 && bot == 0x00)
}

// moveTo records a new logical cursor position. It does not itself cause
// a redraw; TickCursor notices the change on its next call.
func (c *cursor) moveTo(col, row int) {
	c.col = col
	c.row = row
}

// reset restores the cursor to its post-CLEAR_SCREEN/SET_MODE state.
func (c *cursor) reset() {
	*c = cursor{}
}

// tick advances the blink state machine by one main-loop iteration and
// reports the redraw it requires, if any.
func (c *cursor) tick(now uint32) *cursorRedraw {
	if !c.show {
		return &cursorRedraw{col: c.colPrev, row: c.rowPrev, on: false}
	}

	if now-c.lastToggle <= blinkIntervalMicros {
		return nil
	}

	moved := c.col != c.colPrev || c.row != c.rowPrev
	var on bool
	if moved {
		// Force off rather than toggle phase: the cursor just moved, so
		// the old position must be erased regardless of blink phase.
		on = false
	} else {
		c.blinkOn = !c.blinkOn
		on = c.blinkOn
	}

	redraw := &cursorRedraw{col: c.colPrev, row: c.rowPrev, on: on}
	c.colPrev, c.rowPrev = c.col, c.row
	c.lastToggle = now
	return redraw
}
