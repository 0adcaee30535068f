// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package main

import (
	"log"

	"github.com/gocrt/crtbridge/biosvideo"
	"github.com/gocrt/crtbridge/dispatch"
	"github.com/gocrt/crtbridge/protocol"
	"github.com/gocrt/crtbridge/slipframe"
)

// echoReply is the fixed six-byte payload ECHO writes back to the host,
// used to confirm the link is alive independent of the display engine.
var echoReply = [6]byte{6, 5, 4, 3, 2, 1}

// replyWriter is the narrow slice of link.ByteLink the main loop needs to
// answer ECHO directly, without routing it through the engine.
type replyWriter interface {
	TX(b byte)
}

// runOnce executes exactly one main loop iteration: dispatch one pending
// command (if any), tick the cursor, then poll the link for one more
// frame to enqueue. It reports whether an ABORT command was processed,
// at which point the caller must stop calling runOnce.
func runOnce(d *dispatch.Dispatcher, e *biosvideo.Engine, r *slipframe.Reassembler, link replyWriter, logger *log.Logger) (halt bool) {
	if cmd, ok := d.Get(); ok {
		switch cmd.Queue {
		case protocol.QueueVGA:
			e.Emulate(cmd.Frame)
		case protocol.QueueSystem:
			if cmd.Frame.Op == protocol.OpEcho {
				for _, b := range echoReply {
					link.TX(b)
				}
			}
		case protocol.QueueAbort:
			logger.Printf("crtbridged: ABORT received, halting")
			return true
		case protocol.QueueOther1:
			// No handler is defined for this queue; reserved by the
			// wire protocol for a future consumer.
		}
	}

	e.TickCursor()

	if frame, n := r.Poll(); n == 1 {
		d.Enqueue(dispatch.Command{Queue: frame.Queue, Frame: frame})
	}

	return false
}
