// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

//go:build linux

package link

import (
	"github.com/daedaluz/goserial"
	"periph.io/x/conn/v3/gpio"
)

// UART is a ByteLink backed by a real serial port via goserial, the way
// periph-devices' hardware packages (hd44780, matrixorbital) accept either
// a periph.io conn.Conn or a plain io.Writer for the cases periph doesn't
// cover. UART fills that role for a raw UART device node: RTS is driven
// through the port's modem control lines rather than a bit-banged GPIO,
// and the activity LED is an ordinary gpio.PinOut.
type UART struct {
	port *goserial.Port
	led  gpio.PinOut
}

// OpenUART opens device (e.g. "/dev/ttyAMA0") in raw mode and wraps it as
// a ByteLink. led may be nil, in which case Activity is a no-op.
func OpenUART(device string, baud goserial.CFlag, led gpio.PinOut) (*UART, error) {
	opts := goserial.NewOptions().SetReadTimeout(0)
	port, err := goserial.Open(device, opts)
	if err != nil {
		return nil, err
	}

	attrs, err := port.GetAttr()
	if err != nil {
		port.Close()
		return nil, err
	}
	attrs.MakeRaw()
	attrs.SetSpeed(baud)
	if err := port.SetAttr(goserial.TCSANOW, attrs); err != nil {
		port.Close()
		return nil, err
	}

	return &UART{port: port, led: led}, nil
}

// TryRX implements ByteLink. The port is opened with a zero read timeout,
// so Read returns immediately with n==0 when nothing is pending.
func (u *UART) TryRX() (byte, bool) {
	var buf [1]byte
	n, err := u.port.Read(buf[:])
	if err != nil || n == 0 {
		return 0, false
	}
	return buf[0], true
}

// TX implements ByteLink.
func (u *UART) TX(b byte) {
	_, _ = u.port.Write([]byte{b})
}

// SetRTS implements ByteLink using the port's RTS modem control line.
func (u *UART) SetRTS(asserted bool) {
	if asserted {
		_ = u.port.EnableModemLines(goserial.TIOCM_RTS)
	} else {
		_ = u.port.DisableModemLines(goserial.TIOCM_RTS)
	}
}

// Activity implements ByteLink by driving the activity LED pin, if one
// was supplied.
func (u *UART) Activity(on bool) {
	if u.led == nil {
		return
	}
	level := gpio.Low
	if on {
		level = gpio.High
	}
	_ = u.led.Out(level)
}

// Close releases the underlying port.
func (u *UART) Close() error {
	return u.port.Close()
}

var _ ByteLink = (*UART)(nil)
