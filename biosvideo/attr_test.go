// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

import "testing"

func TestResolveAttrColorText(t *testing.T) {
	m := ModeTable[3]
	got := resolveAttr(m, 3, 0x1E)
	if got.fg != 0x0E || got.bg != 0x01 {
		t.Fatalf("resolveAttr(0x1E) = %+v, want fg=0x0E bg=0x01", got)
	}
}

func TestResolveAttrMonoHighIntensityUnderline(t *testing.T) {
	m := ModeTable[7]
	got := resolveAttr(m, 7, byte(AttrHighIntensityUnderline))
	if got.fg != MonoHighIntens || got.bg != MonoBackground {
		t.Fatalf("resolveAttr(HIGH_INT_UL) = %+v", got)
	}
	if got.transform != TransformForceUnderlineRow {
		t.Fatalf("transform = %v, want TransformForceUnderlineRow", got.transform)
	}
}

func TestResolveAttrMonoHidden(t *testing.T) {
	m := ModeTable[9]
	got := resolveAttr(m, 9, byte(AttrHidden))
	if got.fg != got.bg {
		t.Fatalf("resolveAttr(HIDE) fg != bg: %+v", got)
	}
}

func TestResolveAttrGraphicsOverlayIsTransparent(t *testing.T) {
	m := ModeTable[4]
	got := resolveAttr(m, 4, 5)
	if got.bg != Transparent {
		t.Fatalf("resolveAttr() in a graphics mode bg = %d, want Transparent", got.bg)
	}
	if got.fg != 5 {
		t.Fatalf("resolveAttr() fg = %d, want 5", got.fg)
	}
}

func TestGraphicsColorLowResRemap(t *testing.T) {
	if got := graphicsColor(4, 0, 0); got != ColorBlack {
		t.Fatalf("graphicsColor(mode4, 0) = %d, want black", got)
	}
	if got := graphicsColor(4, 3, 0); got != 6 {
		t.Fatalf("graphicsColor(mode4, 3, palette=0) = %d, want 6", got)
	}
	if got := graphicsColor(4, 3, 1); got != 7 {
		t.Fatalf("graphicsColor(mode4, 3, palette=1) = %d, want 7", got)
	}
}

func TestGraphicsColorMode6CollapsesToMonochrome(t *testing.T) {
	if got := graphicsColor(6, 4, 0); got != ColorWhite {
		t.Fatalf("graphicsColor(mode6, 4) = %d, want white", got)
	}
	if got := graphicsColor(6, 0, 0); got != ColorBlack {
		t.Fatalf("graphicsColor(mode6, 0) = %d, want black", got)
	}
}

func TestMonoFillColor(t *testing.T) {
	if got := monoFillColor(byte(AttrInverse)); got != MonoForeground {
		t.Fatalf("monoFillColor(INV) = %d, want MonoForeground", got)
	}
	if got := monoFillColor(byte(AttrNormal)); got != MonoBackground {
		t.Fatalf("monoFillColor(NORMAL) = %d, want MonoBackground", got)
	}
}
