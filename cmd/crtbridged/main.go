// Copyright 2026 The crtbridge Authors. All rights reserved.
// Use of this source code is governed under a BSD-style license
// that can be found in the LICENSE file.

//go:build linux

// Command crtbridged emulates a legacy text/graphics display adapter
// driven by BIOS-style command frames arriving over a serial link.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/daedaluz/goserial"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/gocrt/crtbridge/biosvideo"
	"github.com/gocrt/crtbridge/dispatch"
	"github.com/gocrt/crtbridge/link"
	"github.com/gocrt/crtbridge/mailbox"
	"github.com/gocrt/crtbridge/slipframe"
)

type systemClock struct{ start time.Time }

func (c systemClock) NowMicros() uint32 {
	return uint32(time.Since(c.start).Microseconds())
}

func main() {
	device := flag.String("device", "/dev/ttyAMA0", "serial device node the host drives us through")
	ledPin := flag.String("led-pin", "", "GPIO pin name to pulse on link activity, empty to disable")
	bootMode := flag.Int("boot-mode", 3, "display mode index to select at startup")
	debug := flag.String("debug", "err", "log verbosity: err, info, or verbose")
	monitor := flag.Bool("monitor", false, "mirror the frame buffer to the terminal with ANSI color blocks")
	dumpPNGPath := flag.String("dump-png", "", "write a PNG snapshot of the display here on ABORT, empty to disable")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalf("crtbridged: host.Init: %v", err)
	}

	var led gpio.PinOut
	if *ledPin != "" {
		led = gpioreg.ByName(*ledPin)
		if led == nil {
			log.Fatalf("crtbridged: no such GPIO pin %q", *ledPin)
		}
	}

	uart, err := link.OpenUART(*device, goserial.B115200, led)
	if err != nil {
		log.Fatalf("crtbridged: open %s: %v", *device, err)
	}
	defer uart.Close()

	logger := log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)

	crc16, crc8 := biosvideo.FontChecksums()
	logger.Printf("crtbridged: font checksums: 8x16=0x%02x 8x8=0x%02x", crc16, crc8)

	mb := mailbox.NewSoftware()
	engine := biosvideo.New(mb, uart, systemClock{start: time.Now()}, logger)
	engine.SetDebugLevel(parseDebugLevel(*debug))

	uart.SetRTS(false)
	if err := engine.SetMode(*bootMode); err != nil {
		log.Fatalf("crtbridged: boot SET_MODE(%d): %v", *bootMode, err)
	}
	uart.SetRTS(true)

	dispatcher := dispatch.New(logger)
	reassembler := slipframe.New(uart, logger)

	var mon *monitorWriter
	if *monitor {
		mon = newMonitorWriter(os.Stdout)
	}

	for {
		if runOnce(dispatcher, engine, reassembler, uart, logger) {
			break
		}
		if mon != nil {
			mon.draw(engine)
		}
	}

	if *dumpPNGPath != "" {
		if err := dumpSnapshot(engine, *dumpPNGPath); err != nil {
			logger.Printf("crtbridged: dump-png: %v", err)
		}
	}
}

func parseDebugLevel(s string) biosvideo.DebugLevel {
	switch s {
	case "info":
		return biosvideo.DebugInfo
	case "verbose":
		return biosvideo.DebugVerbose
	default:
		return biosvideo.DebugErr
	}
}
