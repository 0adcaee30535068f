// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"golang.org/x/image/draw"

	"github.com/gocrt/crtbridge/biosvideo"
)

// monitorCols is the terminal width, in character cells, the mirror
// scales every frame down to. A 640-pixel graphics mode would otherwise
// overrun any normal terminal.
const monitorCols = 128

// monitorWriter mirrors Engine.Snapshot to a terminal using ANSI color
// blocks, the way screen1d maps a pixel strip onto terminal output: each
// scaled-down pixel becomes one ansi256-quantized character cell.
type monitorWriter struct {
	w       io.Writer
	palette ansi256.Palette
	scaled  *image.RGBA
	buf     bytes.Buffer
}

// newMonitorWriter wraps w so ANSI escapes render correctly on Windows
// consoles, the same conversion colorable.NewColorableStdout applies to
// os.Stdout specifically; any other io.Writer is used as-is.
func newMonitorWriter(w io.Writer) *monitorWriter {
	out := w
	if f, ok := w.(*os.File); ok {
		out = colorable.NewColorable(f)
	}
	return &monitorWriter{w: out, palette: *ansi256.Default}
}

// draw renders one frame. It silently does nothing if the engine has no
// mode selected yet.
func (m *monitorWriter) draw(e *biosvideo.Engine) {
	img := e.Snapshot()
	if img == nil {
		return
	}

	src := img.Bounds()
	cols := monitorCols
	if src.Dx() < cols {
		cols = src.Dx()
	}
	// Text-mode cells are roughly twice as tall as wide; halve the row
	// count again on top of the aspect-correct scale so glyphs don't come
	// out looking stretched in a monospace terminal.
	rows := src.Dy() * cols / src.Dx() / 2
	if rows < 1 {
		rows = 1
	}

	dstRect := image.Rect(0, 0, cols, rows)
	if m.scaled == nil || m.scaled.Bounds() != dstRect {
		m.scaled = image.NewRGBA(dstRect)
	}
	draw.ApproxBiLinear.Scale(m.scaled, dstRect, img, src, draw.Src, nil)

	m.buf.Reset()
	m.buf.WriteString("\r\033[0m")
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, g, b, _ := m.scaled.At(x, y).RGBA()
			c := color.NRGBA{R: byte(r >> 8), G: byte(g >> 8), B: byte(b >> 8), A: 255}
			io.WriteString(&m.buf, m.palette.Block(c))
		}
		m.buf.WriteString("\033[0m\n")
	}
	m.w.Write(m.buf.Bytes())
}
