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

package virtualkeyboard

import (
	"fmt"

	"github.com/nthand/steno"
)

// Typist is the narrow slice of a virtual-keyboard-protocol session this
// package drives: tap a single key by its evdev-style scancode, and set
// the sticky modifier state subsequent taps are sent with. No Wayland
// client library is wired to it here; a real typist implements this over
// whatever transport it has, the way Compositor does for the input
// method frontend.
type Typist interface {
	// Key taps scancode: a press event immediately followed by release.
	Key(scancode uint32)

	// Modifiers sets the sticky modifier state for subsequent Key calls,
	// until the next Modifiers call changes it.
	Modifiers(ctrl, shift bool)
}

// keycodeBase is the evdev-to-X11 keycode offset: X11/Wayland keycodes
// are evdev scancodes plus 8.
const keycodeBase = 8

// backspaceScancode is the scancode Typist.Key taps to erase one
// character (or, combined with a ctrl Modifiers call, one word) in the
// focused application.
const backspaceScancode = 8

func hasASCII(ch rune) bool {
	return ch >= keycodeBase && ch <= 126
}

func asciiScancode(ch rune) uint32 {
	return uint32(ch) - keycodeBase
}

// Typer drives a Typist from a steno.Output: it erases DeleteWords whole
// words, then Delete.Chars individual characters, then types Append one
// rune at a time, falling back to a Ctrl+Shift+U hex-unicode entry
// sequence for any rune outside the plain ASCII range a keymap can type
// directly.
type Typer struct {
	typist Typist
}

// NewTyper returns a Typer driving typist.
func NewTyper(typist Typist) *Typer {
	return &Typer{typist: typist}
}

// Type plays output through the Typist.
func (t *Typer) Type(output steno.Output) {
	for i := 0; i < output.DeleteWords; i++ {
		t.typist.Modifiers(true, false)
		t.typist.Key(backspaceScancode)
		t.typist.Modifiers(false, false)
	}

	for i := 0; i < output.Delete.Chars; i++ {
		t.typist.Key(backspaceScancode)
	}

	t.typeString(output.Append)
}

func (t *Typer) typeString(s string) {
	for _, ch := range s {
		if hasASCII(ch) {
			t.typist.Key(asciiScancode(ch))
			continue
		}
		t.typeUnicode(ch)
	}
}

// typeUnicode emits the IBus-style Ctrl+Shift+U hex code point entry
// sequence for a rune a keymap can't type directly.
func (t *Typer) typeUnicode(ch rune) {
	t.typist.Modifiers(true, true)
	t.typist.Key(asciiScancode('u'))
	t.typist.Modifiers(false, false)

	for _, b := range fmt.Sprintf("%x", ch) {
		t.typist.Key(asciiScancode(b))
	}
	t.typist.Key(asciiScancode('\n'))
}
