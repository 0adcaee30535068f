// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

import "github.com/gocrt/crtbridge/common"

// FontChecksums returns CRC8 guards over the embedded glyph tables. The
// daemon logs these at boot so a corrupted binary (a bad flash, a bad
// embed) shows up immediately instead of as garbled glyphs later.
func FontChecksums() (crc8x16, crc8x8 byte) {
	return common.CRC8(font8x16), common.CRC8(font8x8)
}
