// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

import "testing"

func TestFontChecksumsAreStable(t *testing.T) {
	a16, a8 := FontChecksums()
	b16, b8 := FontChecksums()
	if a16 != b16 || a8 != b8 {
		t.Fatalf("FontChecksums() is not deterministic: (%x,%x) vs (%x,%x)", a16, a8, b16, b8)
	}
}
