// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

// scrollWindow implements SCROLL_UP (dir=0) and SCROLL_DOWN (dir=1) over
// both the shadow grid and the pixel plane. rows==0 or rows spanning the
// whole window degenerates to a clear.
func (e *Engine) scrollWindow(dir int, rows, tlCol, tlRow, brCol, brRow, attr byte) {
	cols := int(brCol) - int(tlCol) + 1
	height := int(brRow) - int(tlRow) + 1
	if cols <= 0 || height <= 0 {
		e.logf(DebugErr, "SCROLL: empty or invalid window")
		return
	}

	e.blankCursor()

	count := int(rows)
	fillColor := e.scrollFillColor(attr)

	if count == 0 || count >= height {
		e.clearWindow(int(tlCol), int(tlRow), cols, height, fillColor, attr)
		return
	}

	_, fontW, fontH := e.mode.Font.glyphs()
	page := e.displayedPage
	pixelX := int(tlCol) * fontW
	pixelWidth := cols * fontW

	if dir == 0 {
		e.scrollShadowUp(int(tlCol), int(tlRow), cols, height, count)
		srcY := (int(tlRow) + count) * fontH
		dstY := int(tlRow) * fontH
		bandHeight := (height - count) * fontH
		e.surface.MoveBand(page, pixelX, srcY, dstY, pixelWidth, bandHeight)
		e.clearWindow(int(tlCol), int(brRow)-count+1, cols, count, fillColor, attr)
	} else {
		e.scrollShadowDown(int(tlCol), int(tlRow), cols, height, count)
		srcY := int(tlRow) * fontH
		dstY := (int(tlRow) + count) * fontH
		bandHeight := (height - count) * fontH
		e.surface.MoveBand(page, pixelX, srcY, dstY, pixelWidth, bandHeight)
		e.clearWindow(int(tlCol), int(tlRow), cols, count, fillColor, attr)
	}
}

// scrollFillColor derives the pixel color used to paint rows vacated by a
// scroll, which depends on mode family per the design note factoring
// attribute-to-color derivation into one place.
func (e *Engine) scrollFillColor(attr byte) byte {
	switch {
	case e.mode.Kind == KindText && isMono(e.modeIdx):
		return monoFillColor(attr)
	case e.mode.Kind == KindText:
		return (attr >> 4) & 0x0F
	default:
		return attr
	}
}

func (e *Engine) clearWindow(tlCol, tlRow, cols, rows int, fillColor, attr byte) {
	_, fontW, fontH := e.mode.Font.glyphs()
	page := e.displayedPage
	e.surface.Fill(page, tlCol*fontW, tlRow*fontH, cols*fontW, rows*fontH, fillColor)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			e.shadow.set(e.mode, page, tlCol+c, tlRow+r, ' ', attr)
		}
	}
}

func (e *Engine) scrollShadowUp(tlCol, tlRow, cols, height, count int) {
	page := e.displayedPage
	for r := 0; r < height-count; r++ {
		for c := 0; c < cols; c++ {
			char, a := e.shadow.get(e.mode, page, tlCol+c, tlRow+count+r)
			e.shadow.set(e.mode, page, tlCol+c, tlRow+r, char, a)
		}
	}
}

func (e *Engine) scrollShadowDown(tlCol, tlRow, cols, height, count int) {
	page := e.displayedPage
	for r := height - count - 1; r >= 0; r-- {
		for c := 0; c < cols; c++ {
			char, a := e.shadow.get(e.mode, page, tlCol+c, tlRow+r)
			e.shadow.set(e.mode, page, tlCol+c, tlRow+count+r, char, a)
		}
	}
}

// blankCursor re-blits the cursor's last drawn cell without cursor
// decoration, matching the reference firmware's "turn cursor off before
// scroll" step so a mid-blink inverted glyph never survives a scroll.
func (e *Engine) blankCursor() {
	char, attr := e.shadow.get(e.mode, e.displayedPage, e.cursor.colPrev, e.cursor.rowPrev)
	e.blitChar(e.displayedPage, e.cursor.colPrev, e.cursor.rowPrev, char, attr, false)
}
