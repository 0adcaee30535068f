// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package dispatch

import (
	"log"

	"github.com/gocrt/crtbridge/protocol"
)

// QueueLen is the capacity of the ring buffer, CMD_Q_LEN in the source.
const QueueLen = 10

// Command pairs a reassembled frame with its queue selector, which is
// metadata for the consumer, never a priority: ordering is FIFO across
// all selectors.
type Command struct {
	Queue protocol.Queue
	Frame protocol.CommandFrame
}

// Dispatcher is a bounded ring buffer of Commands. It is single-threaded:
// the main loop is the only enqueuer and the only dequeuer, so no
// synchronization is required.
type Dispatcher struct {
	logger *log.Logger
	buf    [QueueLen]Command
	head   int
	count  int
}

// New creates an empty Dispatcher. A nil logger defaults to log.Default().
func New(logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{logger: logger}
}

// Enqueue appends cmd. If the queue is full, the command is dropped and an
// error is logged; Enqueue never blocks.
func (d *Dispatcher) Enqueue(cmd Command) {
	if d.count == QueueLen {
		d.logger.Printf("dispatch: ERR queue full, dropping %v command", cmd.Queue)
		return
	}
	tail := (d.head + d.count) % QueueLen
	d.buf[tail] = cmd
	d.count++
}

// Get pops the oldest Command, or reports ok=false if the queue is empty.
func (d *Dispatcher) Get() (cmd Command, ok bool) {
	if d.count == 0 {
		return Command{}, false
	}
	cmd = d.buf[d.head]
	d.head = (d.head + 1) % QueueLen
	d.count--
	return cmd, true
}

// Len reports the number of commands currently queued.
func (d *Dispatcher) Len() int {
	return d.count
}
