// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/fogleman/gg"

	"github.com/gocrt/crtbridge/biosvideo"
)

// dumpSnapshot renders the engine's current display to a PNG file at
// path, for post-mortem inspection after an ABORT. It is a
// no-op if the engine has no mode selected.
func dumpSnapshot(e *biosvideo.Engine, path string) error {
	img := e.Snapshot()
	if img == nil {
		return nil
	}
	ctx := gg.NewContextForImage(img)
	return ctx.SavePNG(path)
}
