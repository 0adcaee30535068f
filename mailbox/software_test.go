// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package mailbox

import "testing"

func TestConfigureReturnsExpectedLayout(t *testing.T) {
	s := NewSoftware()
	alloc, err := s.Configure(Config{Width: 320, Height: 200, Pages: 4})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if alloc.Pitch != 320 {
		t.Fatalf("Pitch = %d, want 320", alloc.Pitch)
	}
	if alloc.XRes != 320 || alloc.YRes != 200 {
		t.Fatalf("XRes,YRes = %d,%d, want 320,200", alloc.XRes, alloc.YRes)
	}
	wantSize := 320 * 200 * 4
	if len(alloc.Pixels) != wantSize {
		t.Fatalf("len(Pixels) = %d, want %d", len(alloc.Pixels), wantSize)
	}
}

func TestConfigureRejectsZeroDimensions(t *testing.T) {
	s := NewSoftware()
	if _, err := s.Configure(Config{Width: 0, Height: 200, Pages: 1}); err == nil {
		t.Fatalf("Configure() with Width=0 returned nil error")
	}
}

func TestSetPageBeforeConfigureFails(t *testing.T) {
	s := NewSoftware()
	if _, err := s.SetPage(0); err != ErrNotConfigured {
		t.Fatalf("SetPage() before Configure = %v, want ErrNotConfigured", err)
	}
}

func TestSetPageOffsets(t *testing.T) {
	s := NewSoftware()
	if _, err := s.Configure(Config{Width: 80, Height: 25, Pages: 8}); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	cases := []struct {
		page       int
		wantOffset int
		wantErr    bool
	}{
		{page: 0, wantOffset: 0},
		{page: 1, wantOffset: 80 * 25},
		{page: 7, wantOffset: 7 * 80 * 25},
		{page: 8, wantErr: true},
		{page: -1, wantErr: true},
	}
	for _, c := range cases {
		off, err := s.SetPage(c.page)
		if c.wantErr {
			if err == nil {
				t.Errorf("SetPage(%d) error = nil, want non-nil", c.page)
			}
			continue
		}
		if err != nil {
			t.Errorf("SetPage(%d) error = %v", c.page, err)
			continue
		}
		if off != c.wantOffset {
			t.Errorf("SetPage(%d) = %d, want %d", c.page, off, c.wantOffset)
		}
	}
}

func TestSetPalette(t *testing.T) {
	s := NewSoftware()
	if _, err := s.Configure(Config{Width: 40, Height: 25, Pages: 1}); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	var p Palette
	p[1] = 0x00FF0000
	if err := s.SetPalette(p); err != nil {
		t.Fatalf("SetPalette() error = %v", err)
	}
	if got := s.Palette(); got != p {
		t.Fatalf("Palette() = %v, want %v", got, p)
	}
}
