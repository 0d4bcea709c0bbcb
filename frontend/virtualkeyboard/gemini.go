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

// Package virtualkeyboard drives a steno.Engine from a Gemini
// protocol-speaking stenotype device, and plays the resulting edits back
// as synthesized keystrokes through a Typist.
package virtualkeyboard

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/nthand/steno/chord"
	"github.com/nthand/steno/tty"
)

// BaudRate is the fixed serial rate a Gemini protocol stenotype device
// runs at.
const BaudRate = 9600

// ErrMalformedPacket is returned by ReadStroke when a packet does not
// carry the Gemini protocol's start-of-packet marker on its first byte.
var ErrMalformedPacket = errors.New("virtualkeyboard: malformed gemini packet")

// geminiLUT maps a bit position in the 64-bit Gemini packet to the Key it
// represents. Several positions are None: they are reserved, duplicate
// number-bar wiring, or otherwise unused by this device's firmware.
var geminiLUT = [64]chord.Key{
	0: chord.Z,
	3: chord.NumberBar,
	5: chord.NumberBar,
	8: chord.D,
	9: chord.S2,
	10: chord.T2,
	11: chord.G,
	12: chord.L,
	13: chord.B,
	14: chord.P2,
	16: chord.R2,
	17: chord.F,
	18: chord.U,
	19: chord.E,
	20: chord.Star,
	21: chord.Star,
	26: chord.Star,
	27: chord.Star,
	28: chord.O,
	29: chord.A,
	30: chord.R,
	32: chord.H,
	33: chord.W,
	34: chord.P,
	35: chord.K,
	36: chord.T,
	37: chord.S,
	38: chord.S,
	42: chord.NumberBar,
	44: chord.NumberBar,
}

// geminiLUTSet marks which indices of geminiLUT actually hold a key,
// since chord.Key's zero value (NumberBar) is itself a valid mapping and
// can't double as "unset".
var geminiLUTSet = func() [64]bool {
	var set [64]bool
	for _, i := range []int{0, 3, 5, 8, 9, 10, 11, 12, 13, 14, 16, 17, 18, 19, 20, 21, 26, 27, 28, 29, 30, 32, 33, 34, 35, 36, 37, 38, 42, 44} {
		set[i] = true
	}
	return set
}()

// GeminiDevice decodes Gemini protocol stroke packets from a tty.Tty. Each
// ReadStroke call blocks for exactly one 6-byte packet, which the device
// firmware only emits once a full stroke's worth of keys has been
// pressed and released.
type GeminiDevice struct {
	t tty.Tty
}

// NewGeminiDevice wraps t. The caller is responsible for calling t.Start
// before the first ReadStroke and t.Stop when done.
func NewGeminiDevice(t tty.Tty) *GeminiDevice {
	return &GeminiDevice{t: t}
}

// ReadStroke reads and decodes one stroke packet. A read error from the
// underlying Tty is returned as io.ReadFull reports it: io.EOF if the
// stream ends before a packet starts, io.ErrUnexpectedEOF if it ends
// mid-packet, and the Tty's own error otherwise.
func (d *GeminiDevice) ReadStroke() (chord.Chord, error) {
	var buf [8]byte
	if _, err := io.ReadFull(d.t, buf[2:]); err != nil {
		return chord.Empty, err
	}

	if buf[2]&0x80 == 0 {
		return chord.Empty, fmt.Errorf("%w: missing start-of-packet marker", ErrMalformedPacket)
	}
	buf[2] &^= 0x80

	raw := binary.BigEndian.Uint64(buf[:])

	var stroke chord.Chord
	for bit := 0; bit < 64; bit++ {
		if raw&(1<<uint(bit)) == 0 {
			continue
		}
		if !geminiLUTSet[bit] {
			continue
		}
		stroke = stroke.Set(geminiLUT[bit])
	}
	return stroke, nil
}
