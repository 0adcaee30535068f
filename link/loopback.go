// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package link

import "sync"

// Loopback is a deterministic in-memory ByteLink, playing the same role
// for this module's tests that i2ctest.Playback plays for periph-devices'
// I²C device tests: a scripted byte source with a recorded byte sink.
type Loopback struct {
	mu sync.Mutex

	rx []byte

	TXBytes      []byte
	RTSLog       []bool
	ActivityOnN  int // count of Activity(true) calls, for tests that only care it fired
}

// NewLoopback returns a Loopback whose RX stream is pre-loaded with rx.
func NewLoopback(rx []byte) *Loopback {
	l := &Loopback{}
	l.Feed(rx)
	return l
}

// Feed appends more bytes to the simulated RX stream.
func (l *Loopback) Feed(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rx = append(l.rx, b...)
}

func (l *Loopback) TryRX() (byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.rx) == 0 {
		return 0, false
	}
	b := l.rx[0]
	l.rx = l.rx[1:]
	return b, true
}

func (l *Loopback) TX(b byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.TXBytes = append(l.TXBytes, b)
}

func (l *Loopback) SetRTS(asserted bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.RTSLog = append(l.RTSLog, asserted)
}

func (l *Loopback) Activity(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if on {
		l.ActivityOnN++
	}
}

// Pending reports how many RX bytes remain unread.
func (l *Loopback) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rx)
}
