// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

import "github.com/gocrt/crtbridge/mailbox"

// Standard CGA/EGA 16-color indices, in the order the default palette
// installs them.
const (
	ColorBlack        = 0
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Transparent is the sentinel background color used by graphics-mode text
// overlay: the glyph blitter skips the background plot entirely.
const Transparent = 255

// Default monochrome palette slots used by the attribute rules in modes 7
// and 9. They reuse ordinary color indices rather than a separate palette
// range, matching the reference firmware.
const (
	MonoBackground = ColorBlack
	MonoForeground = ColorLightGray
	MonoHighIntens = ColorWhite
)

// DefaultPalette is the standard 16-color IBM palette in BGR packing,
// installed on every SET_MODE.
var DefaultPalette = mailbox.Palette{
	ColorBlack:        0x00000000,
	ColorBlue:         0x00800000,
	ColorGreen:        0x00008000,
	ColorCyan:         0x00808000,
	ColorRed:          0x00000080,
	ColorMagenta:      0x00800080,
	ColorBrown:        0x00008080,
	ColorLightGray:    0x00C0C0C0,
	ColorDarkGray:     0x00808080,
	ColorLightBlue:    0x00FF0000,
	ColorLightGreen:   0x0000FF00,
	ColorLightCyan:    0x00FFFF00,
	ColorLightRed:     0x000000FF,
	ColorLightMagenta: 0x00FF00FF,
	ColorYellow:       0x0000FFFF,
	ColorWhite:        0x00FFFFFF,
}
