// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

import "testing"

func TestCursorSetModeHideSentinel(t *testing.T) {
	var c cursor
	c.setMode(0x20, 0x00)
	if c.show {
		t.Fatalf("setMode(0x20, 0x00) show = true, want false")
	}
	c.setMode(13, 15)
	if !c.show {
		t.Fatalf("setMode(13, 15) show = false, want true")
	}
}

func TestCursorTickHiddenAlwaysRedrawsOff(t *testing.T) {
	var c cursor
	c.setMode(0x20, 0x00)
	c.moveTo(4, 5)
	redraw := c.tick(0)
	if redraw == nil || redraw.on {
		t.Fatalf("tick() on hidden cursor = %+v, want on=false", redraw)
	}
}

func TestCursorTickNotDueYet(t *testing.T) {
	var c cursor
	c.setMode(13, 15)
	c.lastToggle = 1000
	if redraw := c.tick(1000 + blinkIntervalMicros); redraw != nil {
		t.Fatalf("tick() before interval elapsed = %+v, want nil", redraw)
	}
}

func TestCursorTickForcesOffOnMove(t *testing.T) {
	var c cursor
	c.setMode(13, 15)
	c.moveTo(0, 0)
	c.tick(0) // not yet due: colPrev/rowPrev stay at (0,0) and lastToggle at 0
	c.blinkOn = true
	c.moveTo(5, 5)

	redraw := c.tick(blinkIntervalMicros + 1)
	if redraw == nil {
		t.Fatalf("tick() after move = nil, want a redraw")
	}
	if redraw.on {
		t.Fatalf("tick() after move on = true, want false (force off)")
	}
	if redraw.col != 0 || redraw.row != 0 {
		t.Fatalf("tick() after move redraw pos = (%d,%d), want old pos (0,0)", redraw.col, redraw.row)
	}
}

func TestCursorTickTogglesPhaseWhenStationary(t *testing.T) {
	var c cursor
	c.setMode(13, 15)
	c.moveTo(2, 2)
	c.tick(blinkIntervalMicros + 1) // moved from (0,0): forced off, records (2,2) as the previous position

	first := c.tick(2*blinkIntervalMicros + 2)
	second := c.tick(3*blinkIntervalMicros + 3)
	if first == nil || second == nil {
		t.Fatalf("expected both ticks to redraw")
	}
	if first.on == second.on {
		t.Fatalf("consecutive stationary ticks did not toggle phase: %v, %v", first.on, second.on)
	}
}
