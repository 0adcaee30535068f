// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

// Surface is a thin, bounds-checked wrapper over the raw byte region a
// mailbox.Mailbox hands back. All bounds checks live here so that the
// rest of the package can address pixels without repeating range guards.
//
// It deliberately preserves a quirk inherited from the source: Plot and
// Get address a scan line using Pitch (the true bytes-per-row of the
// allocation, which a real GPU may pad for alignment), while Fill and
// MoveBand -- used by window clears and scrolling -- stride by XRes. For
// every mode this package supports, Pitch equals XRes, so the two agree.
// If a future mode ever requested a padded pitch this would silently
// diverge; that divergence is preserved rather than unified, per the
// design note it was flagged under.
type Surface struct {
	pixels   []byte
	pitch    int
	xres     int
	yres     int // physical rows per page
	pageSize int // xres * yres; the stride between pages
}

// NewSurface wraps pixels, sized pitch*yres*pages bytes, with the given
// physical geometry.
func NewSurface(pixels []byte, pitch, xres, yres int) *Surface {
	return &Surface{
		pixels:   pixels,
		pitch:    pitch,
		xres:     xres,
		yres:     yres,
		pageSize: xres * yres,
	}
}

// Pitch, XRes and YRes report the surface's physical geometry.
func (s *Surface) Pitch() int { return s.pitch }
func (s *Surface) XRes() int  { return s.xres }
func (s *Surface) YRes() int  { return s.yres }

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.xres && y >= 0 && y < s.yres
}

// Plot writes color at (x, y) within page, silently ignoring out-of-bounds
// coordinates.
func (s *Surface) Plot(page, x, y int, color byte) {
	if !s.inBounds(x, y) {
		return
	}
	off := page*s.pageSize + x + y*s.pitch
	if off < 0 || off >= len(s.pixels) {
		return
	}
	s.pixels[off] = color
}

// Get reads the color at (x, y) within page, returning 0 if out of bounds.
func (s *Surface) Get(page, x, y int) byte {
	if !s.inBounds(x, y) {
		return 0
	}
	off := page*s.pageSize + x + y*s.pitch
	if off < 0 || off >= len(s.pixels) {
		return 0
	}
	return s.pixels[off]
}

// Fill paints a width x height rectangle starting at (x, y) within page
// with color, row stride XRes.
func (s *Surface) Fill(page, x, y, width, height int, color byte) {
	for row := 0; row < height; row++ {
		base := page*s.pageSize + x + (y+row)*s.xres
		if base < 0 || base+width > len(s.pixels) {
			continue
		}
		line := s.pixels[base : base+width]
		for i := range line {
			line[i] = color
		}
	}
}

// MoveBand copies a width x height rectangle from (x, srcY) to (x, dstY)
// within page, row stride XRes, tolerating overlap between source and
// destination the way a scroll within one page requires.
func (s *Surface) MoveBand(page, x, srcY, dstY, width, height int) {
	if dstY < srcY {
		for row := 0; row < height; row++ {
			s.copyRow(page, x, srcY+row, dstY+row, width)
		}
		return
	}
	for row := height - 1; row >= 0; row-- {
		s.copyRow(page, x, srcY+row, dstY+row, width)
	}
}

func (s *Surface) copyRow(page, x, srcY, dstY, width int) {
	srcBase := page*s.pageSize + x + srcY*s.xres
	dstBase := page*s.pageSize + x + dstY*s.xres
	if srcBase < 0 || dstBase < 0 || srcBase+width > len(s.pixels) || dstBase+width > len(s.pixels) {
		return
	}
	copy(s.pixels[dstBase:dstBase+width], s.pixels[srcBase:srcBase+width])
}
