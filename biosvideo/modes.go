// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

import "fmt"

// Kind classifies a mode's rendering family.
type Kind int

const (
	KindText Kind = iota
	KindGraphics
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "TEXT"
	case KindGraphics:
		return "GRAPHICS"
	case KindUnsupported:
		return "UNSUPPORTED"
	default:
		return "Kind(?)"
	}
}

// Font identifies a glyph table. F9x14 is named but never wired to actual
// glyph data: the reference firmware carried it behind a disabled build
// flag, and no mode in ModeTable selects it.
type Font int

const (
	FontNone Font = iota
	Font8x8
	Font8x16
	Font9x14
)

func (f Font) String() string {
	switch f {
	case FontNone:
		return "NONE"
	case Font8x8:
		return "8x8"
	case Font8x16:
		return "8x16"
	case Font9x14:
		return "9x14"
	default:
		return "Font(?)"
	}
}

// glyphs returns the font table backing f, and its cell dimensions. It
// panics on Font9x14 and FontNone. No ModeTable entry selects Font9x14,
// and SetMode rejects the FontNone entry (mode 8) before calling it.
func (f Font) glyphs() (table []byte, w, h int) {
	switch f {
	case Font8x8:
		return font8x8, 8, 8
	case Font8x16:
		return font8x16, 8, 16
	default:
		panic(fmt.Sprintf("biosvideo: font %v has no glyph table", f))
	}
}

// ModeDescriptor describes one of the ten BIOS-call-indexed video modes.
type ModeDescriptor struct {
	Cols, Rows int
	Kind       Kind
	Font       Font
	Pages      int
}

// ShadowCells reports how many shadow-grid cells a full complement of
// pages for this mode occupies.
func (m ModeDescriptor) ShadowCells() int {
	return m.Pages * m.Cols * m.Rows
}

// ShadowCapacity is the fixed size of the shadow grid, large enough for
// the largest mode×page combination in ModeTable (160×64, or 40×25×8).
const ShadowCapacity = 10240

// ModeTable holds the ten mode descriptors addressed by SET_MODE's b1.
// Index 8 is the unsupported Hercules graphics mode; every other index is
// reachable.
var ModeTable = [10]ModeDescriptor{
	0: {Cols: 40, Rows: 25, Kind: KindText, Font: Font8x8, Pages: 8},
	1: {Cols: 40, Rows: 25, Kind: KindText, Font: Font8x8, Pages: 8},
	2: {Cols: 80, Rows: 25, Kind: KindText, Font: Font8x16, Pages: 4},
	3: {Cols: 80, Rows: 25, Kind: KindText, Font: Font8x16, Pages: 4},
	4: {Cols: 40, Rows: 25, Kind: KindGraphics, Font: Font8x8, Pages: 1},
	5: {Cols: 40, Rows: 25, Kind: KindGraphics, Font: Font8x8, Pages: 1},
	6: {Cols: 80, Rows: 25, Kind: KindGraphics, Font: Font8x8, Pages: 1},
	7: {Cols: 80, Rows: 25, Kind: KindText, Font: Font8x16, Pages: 1},
	8: {Cols: 80, Rows: 25, Kind: KindUnsupported, Font: FontNone, Pages: 1},
	9: {Cols: 160, Rows: 64, Kind: KindText, Font: Font8x16, Pages: 1},
}

// isMono reports whether mode index idx uses the monochrome attribute
// rules (modes 7 and 9 in ModeTable).
func isMono(idx int) bool {
	return idx == 7 || idx == 9
}

func init() {
	for idx, m := range ModeTable {
		if m.Kind == KindUnsupported {
			continue
		}
		if m.ShadowCells() > ShadowCapacity {
			panic(fmt.Sprintf("biosvideo: mode %d needs %d shadow cells, capacity is %d", idx, m.ShadowCells(), ShadowCapacity))
		}
	}
}
