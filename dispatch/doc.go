// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

// Package dispatch implements the bounded FIFO queue that sits between
// the packet reassembler and the main loop. Enqueue never blocks --
// blocking here would stall the reassembler's RTS flow control -- so a
// full queue simply drops the newest command and logs an error.
package dispatch
