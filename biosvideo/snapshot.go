// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

import (
	"image"
	"image/color"

	"github.com/gocrt/crtbridge/mailbox"
)

// pagePaletteSource is implemented by mailbox.Software; Snapshot degrades
// to DefaultPalette against a Mailbox that cannot report one back.
type pagePaletteSource interface {
	Palette() mailbox.Palette
}

// Snapshot renders the displayed page as an *image.Paletted, suitable for
// encoding to PNG/JPEG (videosink.Display) or mirroring to a terminal.
// It returns nil if the engine is UNINIT.
func (e *Engine) Snapshot() *image.Paletted {
	if !e.Ready() {
		return nil
	}

	pal := DefaultPalette
	if src, ok := e.mb.(pagePaletteSource); ok {
		pal = src.Palette()
	}

	model := make(color.Palette, 16)
	for i, bgr := range pal {
		model[i] = color.RGBA{
			R: byte(bgr),
			G: byte(bgr >> 8),
			B: byte(bgr >> 16),
			A: 0xFF,
		}
	}

	xres, yres := e.surface.XRes(), e.surface.YRes()
	img := image.NewPaletted(image.Rect(0, 0, xres, yres), model)
	for y := 0; y < yres; y++ {
		for x := 0; x < xres; x++ {
			img.SetColorIndex(x, y, e.surface.Get(e.displayedPage, x, y))
		}
	}
	return img
}
