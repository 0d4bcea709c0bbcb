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
	"encoding/binary"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/nthand/steno/chord"
	"github.com/nthand/steno/tty"
)

// markerBit is the LUT-unused bit position the device sets on the first
// byte of every packet to mark the start of a stroke.
const markerBit = 47

func packetFor(bits ...int) []byte {
	var raw uint64
	raw |= 1 << markerBit
	for _, b := range bits {
		raw |= 1 << uint(b)
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], raw)
	return buf[2:]
}

func TestGeminiDeviceReadStroke(t *testing.T) {
	Convey("Given a GeminiDevice reading from a fake tty", t, func() {
		f := tty.NewFake()
		d := NewGeminiDevice(f)

		Convey("A packet with K, A, and T bits set decodes to that chord", func() {
			f.Feed(packetFor(35, 29, 36))

			stroke, err := d.ReadStroke()
			So(err, ShouldBeNil)
			So(stroke, ShouldEqual, chord.Empty.Set(chord.K).Set(chord.A).Set(chord.T))
		})

		Convey("A packet missing the start-of-packet marker is rejected", func() {
			buf := packetFor(35)
			buf[0] &^= 0x80
			f.Feed(buf)

			_, err := d.ReadStroke()
			So(err, ShouldNotBeNil)
		})

		Convey("Reading past the end of the stream surfaces the underlying error", func() {
			_, err := d.ReadStroke()
			So(err, ShouldNotBeNil)
		})
	})
}
