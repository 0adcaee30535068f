// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

// Package mailbox allocates and configures the linear 8-bpp pixel surface
// that biosvideo draws into. The name and the tag-style Configure call are
// taken from the VideoCore GPU mailbox property interface the reference
// firmware used to allocate its frame buffer: a single batched request sets
// physical and virtual resolution, color depth and palette, and returns the
// base address, pitch and byte size the caller needs to address it
// directly. Software.Configure implements the same contract entirely in
// Go-managed memory, with no GPU involved.
package mailbox
