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

package tty

import (
	"bytes"
	"errors"
	"sync"
)

// ErrClosed is returned from Read/Write on a Fake that has been closed.
var ErrClosed = errors.New("tty: use of closed fake device")

// Fake is an in-memory Tty for tests: writes from the device under test
// land in Written, and bytes queued with Feed are returned by Read, as a
// real stenotype packet stream would be.
type Fake struct {
	mu      sync.Mutex
	pending bytes.Buffer
	Written bytes.Buffer
	started bool
	closed  bool
}

// NewFake returns a ready-to-Start Fake.
func NewFake() *Fake {
	return &Fake{}
}

// Feed queues bytes to be returned by future Read calls.
func (f *Fake) Feed(b []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending.Write(b)
}

func (f *Fake) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
	return nil
}

func (f *Fake) Drain() error {
	return nil
}

func (f *Fake) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = false
	return nil
}

func (f *Fake) Read(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0, ErrClosed
	}
	return f.pending.Read(b)
}

func (f *Fake) Write(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0, ErrClosed
	}
	return f.Written.Write(b)
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
