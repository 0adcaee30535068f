// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package mailbox

import "sync"

// Software is a Mailbox backed by a plain Go slice. It never talks to a
// GPU; it exists so biosvideo can run, and be tested, on any platform.
type Software struct {
	mu      sync.Mutex
	cfg     Config
	buf     []byte
	pitch   int
	page    int
	palette Palette
}

var _ Mailbox = (*Software)(nil)

// NewSoftware returns an unconfigured allocator. Configure must be called
// before SetPalette or SetPage.
func NewSoftware() *Software {
	return &Software{page: -1}
}

// Configure implements Mailbox. Pitch is set equal to Width: the software
// allocator never pads scan lines, unlike a GPU that may round pitch up
// for memory alignment.
func (s *Software) Configure(cfg Config) (Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg.Depth == 0 {
		cfg.Depth = 8
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Pages <= 0 {
		return Allocation{}, &ErrInvalidConfig{Config: cfg}
	}

	pitch := cfg.Width
	size := pitch * cfg.Height * cfg.Pages
	s.cfg = cfg
	s.buf = make([]byte, size)
	s.pitch = pitch
	s.page = 0
	s.palette = cfg.Palette

	return Allocation{
		Pixels: s.buf,
		Pitch:  pitch,
		XRes:   cfg.Width,
		YRes:   cfg.Height,
	}, nil
}

// SetPalette implements Mailbox.
func (s *Software) SetPalette(p Palette) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return ErrNotConfigured
	}
	s.palette = p
	return nil
}

// Palette returns the currently installed color table.
func (s *Software) Palette() Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette
}

// SetPage implements Mailbox.
func (s *Software) SetPage(page int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return 0, ErrNotConfigured
	}
	if page < 0 || page >= s.cfg.Pages {
		return 0, &ErrInvalidPage{Page: page, Pages: s.cfg.Pages}
	}
	s.page = page
	return page * s.cfg.Height * s.pitch, nil
}
