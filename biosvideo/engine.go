// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

import (
	"log"

	"github.com/gocrt/crtbridge/mailbox"
	"github.com/gocrt/crtbridge/protocol"
)

// ReplyLink is the narrow slice of link.ByteLink the engine needs to emit
// GET_CHR and GET_PIX replies. It never reads from the link.
type ReplyLink interface {
	TX(b byte)
}

// DebugLevel filters which log lines Engine emits, mirroring the
// reference firmware's runtime-adjustable {ERR, INFO, VERBOSE} levels.
// The daemon sets it from its -debug command-line flag; no wire opcode
// or queue changes it.
type DebugLevel int

const (
	DebugErr DebugLevel = iota
	DebugInfo
	DebugVerbose
)

// Engine is the mode/page/font/cursor state machine. It owns the pixel
// surface, the shadow grid and the cursor, and is the single entry point
// for every VGA-queue command plus the periodic cursor tick. It expects
// to run on a single goroutine.
type Engine struct {
	mb    mailbox.Mailbox
	link  ReplyLink
	clock Clock
	log   *log.Logger

	debugLevel DebugLevel

	modeIdx       int // -1 until SetMode succeeds
	mode          ModeDescriptor
	displayedPage int // -1 until SetMode succeeds
	paletteSel    byte

	surface *Surface
	shadow  shadow
	cursor  cursor
}

// New creates an Engine. It is UNINIT until SetMode succeeds. A nil
// logger defaults to log.Default().
func New(mb mailbox.Mailbox, replyLink ReplyLink, clock Clock, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		mb:            mb,
		link:          replyLink,
		clock:         clock,
		log:           logger,
		modeIdx:       -1,
		displayedPage: -1,
	}
}

// Ready reports whether SetMode has ever succeeded.
func (e *Engine) Ready() bool {
	return e.modeIdx >= 0 && e.displayedPage >= 0 && e.surface != nil
}

// ModeIndex returns the active mode index, or -1 if UNINIT.
func (e *Engine) ModeIndex() int { return e.modeIdx }

// DisplayedPage returns the page currently slid into view.
func (e *Engine) DisplayedPage() int { return e.displayedPage }

// Palette returns the color table currently installed, a feature the
// source exposed for debug dumps but the wire protocol never reads back.
func (e *Engine) Palette() mailbox.Palette {
	if sw, ok := e.mb.(interface{ Palette() mailbox.Palette }); ok {
		return sw.Palette()
	}
	return DefaultPalette
}

// SetDebugLevel adjusts which log lines Emulate and SetMode produce.
func (e *Engine) SetDebugLevel(lvl DebugLevel) {
	e.debugLevel = lvl
}

func (e *Engine) logf(lvl DebugLevel, format string, args ...any) {
	if lvl > e.debugLevel {
		return
	}
	e.log.Printf("biosvideo: "+format, args...)
}

// SetMode re-allocates the frame buffer for modeIdx's pixel geometry and
// page count, installs the default palette, and resets the shadow grid,
// all pages and the cursor. On failure the engine is left exactly as it
// was before the call.
func (e *Engine) SetMode(modeIdx int) error {
	if modeIdx < 0 || modeIdx >= len(ModeTable) {
		e.logf(DebugErr, "SET_MODE: index %d out of range", modeIdx)
		return &UnsupportedModeError{Mode: modeIdx}
	}
	m := ModeTable[modeIdx]
	if m.Kind == KindUnsupported || m.Font == FontNone {
		e.logf(DebugErr, "SET_MODE: mode %d is unsupported", modeIdx)
		return &UnsupportedModeError{Mode: modeIdx}
	}

	_, fontW, fontH := m.Font.glyphs()
	cfg := mailbox.Config{
		Width:   m.Cols * fontW,
		Height:  m.Rows * fontH,
		Pages:   m.Pages,
		Depth:   8,
		Palette: DefaultPalette,
	}
	alloc, err := e.mb.Configure(cfg)
	if err != nil {
		e.logf(DebugErr, "SET_MODE: mailbox configure failed: %v", err)
		return &MailboxError{Op: "configure", Err: err}
	}
	if err := e.mb.SetPalette(DefaultPalette); err != nil {
		e.logf(DebugErr, "SET_MODE: mailbox set palette failed: %v", err)
		return &MailboxError{Op: "set palette", Err: err}
	}

	e.modeIdx = modeIdx
	e.mode = m
	e.displayedPage = 0
	e.paletteSel = 0
	e.surface = NewSurface(alloc.Pixels, alloc.Pitch, alloc.XRes, alloc.YRes)
	e.shadow.reset()
	e.cursor.reset()

	for p := 0; p < m.Pages; p++ {
		e.clearPage(p)
	}
	e.logf(DebugInfo, "SET_MODE: now mode %d (%dx%d, %d pages)", modeIdx, m.Cols, m.Rows, m.Pages)
	return nil
}

// Emulate routes one reassembled VGA-queue command frame. Calling it
// before a successful SetMode (except the SET_MODE command itself) logs
// an error and is a no-op.
func (e *Engine) Emulate(cmd protocol.CommandFrame) {
	if cmd.Op == protocol.OpSetMode {
		if err := e.SetMode(int(cmd.B1)); err != nil {
			e.logf(DebugErr, "SET_MODE(%d) failed: %v", cmd.B1, err)
		}
		return
	}
	if !e.Ready() {
		e.logf(DebugErr, "%v received before engine is initialized: %v", cmd.Op, &NotInitializedError{})
		return
	}

	switch cmd.Op {
	case protocol.OpSetPage:
		e.setPage(int(cmd.B1))
	case protocol.OpSetCursorPos:
		e.setCursorPos(int(cmd.B1), int(cmd.B3), int(cmd.B4))
	case protocol.OpSetCursorMode:
		e.cursor.setMode(cmd.B1, cmd.B2)
	case protocol.OpPutCharAttr:
		e.putChar(int(cmd.B1), int(cmd.B3), int(cmd.B4), cmd.B2, cmd.B6, false)
	case protocol.OpPutChar:
		e.putChar(int(cmd.B1), int(cmd.B3), int(cmd.B4), cmd.B2, 0, true)
	case protocol.OpGetChar:
		e.getChar(int(cmd.B1), int(cmd.B3), int(cmd.B4))
	case protocol.OpScrollUp:
		e.scrollWindow(0, cmd.B1, cmd.B2, cmd.B3, cmd.B4, cmd.B5, cmd.B6)
	case protocol.OpScrollDown:
		e.scrollWindow(1, cmd.B1, cmd.B2, cmd.B3, cmd.B4, cmd.B5, cmd.B6)
	case protocol.OpPutPixel:
		x := protocol.U16(cmd.B4, cmd.B3)
		y := protocol.U16(cmd.B6, cmd.B5)
		e.putPixel(int(cmd.B1), cmd.B2, x, y)
	case protocol.OpGetPixel:
		x := protocol.U16(cmd.B4, cmd.B3)
		y := protocol.U16(cmd.B6, cmd.B5)
		e.getPixel(int(cmd.B1), x, y)
	case protocol.OpPalette:
		e.paletteSel = cmd.B1 & 0x01
	case protocol.OpClearScreen:
		if int(cmd.B1) >= e.mode.Pages {
			e.logf(DebugErr, "CLEAR_SCREEN: invalid page %d", cmd.B1)
			return
		}
		e.clearPage(int(cmd.B1))
		e.cursor.reset()
	default:
		e.logf(DebugErr, "unknown opcode %v", cmd.Op)
	}
}

// TickCursor advances the blink state machine by one main-loop iteration.
// It is a no-op in UNSUPPORTED or GRAPHICS modes, or before SetMode.
func (e *Engine) TickCursor() {
	if !e.Ready() || e.mode.Kind != KindText {
		return
	}
	redraw := e.cursor.tick(e.clock.NowMicros())
	if redraw == nil {
		return
	}
	char, attr := e.shadow.get(e.mode, e.displayedPage, redraw.col, redraw.row)
	e.blitChar(e.displayedPage, redraw.col, redraw.row, char, attr, redraw.on)
}

func (e *Engine) setPage(page int) {
	if page >= e.mode.Pages {
		e.logf(DebugErr, "SET_PAGE: invalid page %d", page)
		return
	}
	if _, err := e.mb.SetPage(page); err != nil {
		e.logf(DebugErr, "SET_PAGE: mailbox failed: %v", err)
		return
	}
	e.displayedPage = page
}

func (e *Engine) setCursorPos(page, col, row int) {
	if page >= e.mode.Pages {
		e.logf(DebugErr, "SET_CURSOR_POS: invalid page %d", page)
		return
	}
	if col < e.mode.Cols && row < e.mode.Rows {
		e.cursor.moveTo(col, row)
	}
}

func (e *Engine) putChar(page, col, row int, char, attr byte, useCurrentAttr bool) {
	if page >= e.mode.Pages || col >= e.mode.Cols || row >= e.mode.Rows {
		e.logf(DebugErr, "PUT_CHR: invalid position page=%d col=%d row=%d", page, col, row)
		return
	}
	if useCurrentAttr {
		_, attr = e.shadow.get(e.mode, page, col, row)
	}
	e.shadow.set(e.mode, page, col, row, char, attr)
	e.blitChar(page, col, row, char, attr, false)
}

func (e *Engine) getChar(page, col, row int) {
	if page >= e.mode.Pages || col >= e.mode.Cols || row >= e.mode.Rows {
		e.logf(DebugErr, "GET_CHR: invalid position page=%d col=%d row=%d", page, col, row)
		return
	}
	char, attr := e.shadow.get(e.mode, page, col, row)
	e.link.TX(attr)
	e.link.TX(char)
}

func (e *Engine) putPixel(page int, colorByte byte, x, y uint16) {
	if e.mode.Kind != KindGraphics {
		e.logf(DebugErr, "PUT_PIX: mode %d is not a graphics mode", e.modeIdx)
		return
	}
	if page >= e.mode.Pages {
		e.logf(DebugErr, "PUT_PIX: invalid page %d", page)
		return
	}
	xorFlag := colorByte&0x80 != 0
	c := graphicsColor(e.modeIdx, colorByte&^0x80, e.paletteSel)
	if xorFlag {
		c ^= e.surface.Get(page, int(x), int(y))
	}
	e.surface.Plot(page, int(x), int(y), c)
}

func (e *Engine) getPixel(page int, x, y uint16) {
	if page >= e.mode.Pages {
		e.logf(DebugErr, "GET_PIX: invalid page %d", page)
		return
	}
	e.link.TX(e.surface.Get(page, int(x), int(y)))
}

// clearPage fills page's pixel plane with black and its shadow region
// with a space character carrying the mode-appropriate default attribute.
func (e *Engine) clearPage(page int) {
	e.surface.Fill(page, 0, 0, e.surface.XRes(), e.surface.YRes(), ColorBlack)

	var defaultAttr byte
	if e.mode.Kind == KindText && !isMono(e.modeIdx) {
		defaultAttr = ColorLightGray | ColorBlack<<4
	} else if isMono(e.modeIdx) {
		defaultAttr = byte(AttrNormal)
	}
	for row := 0; row < e.mode.Rows; row++ {
		for col := 0; col < e.mode.Cols; col++ {
			e.shadow.set(e.mode, page, col, row, ' ', defaultAttr)
		}
	}
}

// blitChar draws character c at the given cell using attr's resolved
// colors. When cursorOn is set, the glyph rows within the cursor's
// scan-line range are bit-inverted before plotting, integrating cursor
// rendering into the ordinary character blit rather than a separate
// overlay pass.
func (e *Engine) blitChar(page, col, row int, c, attr byte, cursorOn bool) {
	table, fontW, fontH := e.mode.Font.glyphs()
	res := resolveAttr(e.mode, e.modeIdx, attr)

	for r := 0; r < fontH; r++ {
		bits := table[int(c)*fontH+r]
		if res.transform == TransformForceUnderlineRow && r == fontH-2 {
			bits = 0xFF
		} else if res.transform == TransformInvert {
			bits = ^bits
		}
		if cursorOn && r >= int(e.cursor.startLine) && r <= int(e.cursor.endLine) {
			bits = ^bits
		}

		py := row*fontH + r
		mask := byte(0x80)
		for col8 := 0; col8 < 8; col8++ {
			px := col*fontW + col8
			if bits&mask != 0 {
				e.surface.Plot(page, px, py, res.fg)
			} else if res.bg != Transparent {
				e.surface.Plot(page, px, py, res.bg)
			}
			mask >>= 1
		}
	}
}
