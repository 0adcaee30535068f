// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

package biosvideo

import "fmt"

// NotInitializedError describes a command attempted before a successful
// SetMode. Emulate logs it; it is never returned, since Emulate has no
// error return of its own.
type NotInitializedError struct{}

func (e *NotInitializedError) Error() string {
	return "biosvideo: engine is not initialized"
}

// UnsupportedModeError is returned by SetMode for an unknown or
// UNSUPPORTED mode index.
type UnsupportedModeError struct {
	Mode int
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("biosvideo: mode %d is unsupported", e.Mode)
}

// MailboxError wraps a failure from the Mailbox during SetMode, matching
// the source's "SET_MODE returns -1" contract: the engine stays in its
// previous state. A failed SET_PAGE is only logged.
type MailboxError struct {
	Op  string
	Err error
}

func (e *MailboxError) Error() string {
	return fmt.Sprintf("biosvideo: mailbox %s failed: %v", e.Op, e.Err)
}

func (e *MailboxError) Unwrap() error {
	return e.Err
}
