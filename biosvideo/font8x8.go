// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

// font8x8 holds the 8x8 glyph bitmaps used by the 40-column and low-res
// graphics modes. There is no independent 8x8 master; each glyph row is
// derived by OR-ing the corresponding pair of rows out of font8x16, which
// keeps every vertical stroke and serif visible at half height instead of
// simply discarding every other scan line.
var font8x8 []byte

func init() {
	font8x8 = make([]byte, 256*8)
	for glyph := 0; glyph < 256; glyph++ {
		src := font8x16[glyph*16 : glyph*16+16]
		dst := font8x8[glyph*8 : glyph*8+8]
		for row := 0; row < 8; row++ {
			dst[row] = src[row*2] | src[row*2+1]
		}
	}
}
