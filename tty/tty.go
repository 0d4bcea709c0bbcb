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

// Package tty abstracts the duplex byte stream a stenotype device is read
// from. A stenotype machine typically shows up as a USB-serial adapter
// presenting a fixed-baud raw link; this package gives the
// virtualkeyboard frontend a Tty it can Read chord packets from without
// caring whether the other end is a real device or a test fake.
package tty

import "io"

// Tty is a duplex byte stream with start/stop lifecycle, mirroring the
// raw-mode contract a serial stenotype link needs: put the device in a
// mode where whole packets arrive without line-discipline interference,
// and restore it cleanly on Stop.
//
// The caller serializes all calls; Start must be idempotent, and Stop may
// be called while a Read is blocked (Drain should unblock it).
type Tty interface {
	// Start opens and configures the device (raw mode, fixed baud, no
	// flow control). Start must be idempotent.
	Start() error

	// Stop restores anything Start changed and releases the device.
	// Drain is called first.
	Stop() error

	// Drain unblocks any pending Read call, e.g. by arming a read
	// deadline. Implementations may make this a no-op if Read already
	// does not block indefinitely.
	Drain() error

	io.ReadWriteCloser
}
