// Copyright 2025 The Steno Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux || darwin || freebsd || netbsd || openbsd

package tty

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// SerialDevice is a Tty backed by a real serial port, such as the
// USB-serial adapter a stenotype machine presents itself as.
type SerialDevice struct {
	path string
	baud int

	f    *os.File
	fd   int
	orig unix.Termios
}

// NewSerialDevice returns a Tty for the device at path, run at baud. The
// device is not opened until Start is called.
func NewSerialDevice(path string, baud int) *SerialDevice {
	return &SerialDevice{path: path, baud: baud}
}

func (d *SerialDevice) Start() error {
	if d.f != nil {
		return nil
	}

	f, err := os.OpenFile(d.path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening serial device %q: %w", d.path, err)
	}
	fd := int(f.Fd())

	saved, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("reading termios for %q: %w", d.path, err)
	}

	raw := *saved
	rate, ok := standardRates[d.baud]
	if !ok {
		_ = f.Close()
		return fmt.Errorf("unsupported baud rate %d", d.baud)
	}
	makeRaw(&raw, rate)

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		_ = f.Close()
		return fmt.Errorf("setting raw mode on %q: %w", d.path, err)
	}

	d.f = f
	d.fd = fd
	d.orig = *saved
	return nil
}

// makeRaw turns termios into a raw, fixed-baud, no-flow-control mode: no
// line discipline, no echo, 8 data bits, read blocks for at least one
// byte with no inter-byte timeout. Equivalent to a POSIX cfmakeraw
// followed by pinning the exact baud rate, since the B-constants for a
// stenotype device's usual bauds (9600 here) don't always round the way
// a higher-level speed-setting helper would.
func makeRaw(t *unix.Termios, rate uint32) {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	t.Ispeed = rate
	t.Ospeed = rate
}

var standardRates = map[int]uint32{
	1200:   unix.B1200,
	2400:   unix.B2400,
	4800:   unix.B4800,
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
}

func (d *SerialDevice) Drain() error {
	if d.f == nil {
		return nil
	}
	return d.f.SetReadDeadline(time.Now())
}

func (d *SerialDevice) Stop() error {
	if d.f == nil {
		return nil
	}
	f, fd, orig := d.f, d.fd, d.orig
	d.f = nil

	_ = unix.IoctlSetTermios(fd, ioctlSetTermios, &orig)
	return f.Close()
}

func (d *SerialDevice) Read(b []byte) (int, error) {
	return d.f.Read(b)
}

func (d *SerialDevice) Write(b []byte) (int, error) {
	return d.f.Write(b)
}

func (d *SerialDevice) Close() error {
	return d.Stop()
}
