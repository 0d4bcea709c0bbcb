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

package steno

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/nthand/steno/chord"
)

func TestMakeNumbers(t *testing.T) {
	Convey("A plain number-bar chord spells its digits in steno order", t, func() {
		text, ok := makeNumbers(mustChord(t, "1-9"))
		So(ok, ShouldBeTrue)
		So(text, ShouldEqual, "19")
	})

	Convey("E or U reverses the digits", t, func() {
		text, ok := makeNumbers(mustChord(t, "1-9E"))
		So(ok, ShouldBeTrue)
		So(text, ShouldEqual, "91")
	})

	Convey("D and Z together make a round-dollar amount", t, func() {
		text, ok := makeNumbers(mustChord(t, "5-DZ"))
		So(ok, ShouldBeTrue)
		So(text, ShouldEqual, "$500")
	})

	Convey("D alone duplicates the digits", t, func() {
		text, ok := makeNumbers(mustChord(t, "1-D"))
		So(ok, ShouldBeTrue)
		So(text, ShouldEqual, "11")
	})

	Convey("Z alone appends two zeros", t, func() {
		text, ok := makeNumbers(mustChord(t, "1-Z"))
		So(ok, ShouldBeTrue)
		So(text, ShouldEqual, "100")
	})

	Convey("K appends a time suffix", t, func() {
		text, ok := makeNumbers(mustChord(t, "1K"))
		So(ok, ShouldBeTrue)
		So(text, ShouldEqual, "1:00")
	})

	Convey("A chord with the number bar but no digit keys is not a number", t, func() {
		_, ok := makeNumbers(mustChord(t, "#*"))
		So(ok, ShouldBeFalse)
	})

	Convey("Leftover non-number keys after decoding make it not a number", t, func() {
		_, ok := makeNumbers(mustChord(t, "1W"))
		So(ok, ShouldBeFalse)
	})
}

func TestSplitSuffix(t *testing.T) {
	Convey("A chord with a suffix key splits into the rest and the suffix", t, func() {
		without, suffix, ok := splitSuffix(mustChord(t, "-S"))
		So(ok, ShouldBeTrue)
		So(without, ShouldEqual, chord.Empty)
		So(suffix, ShouldEqual, mustChord(t, "-S"))
	})

	Convey("A chord without any suffix key does not split", t, func() {
		_, _, ok := splitSuffix(mustChord(t, "KAT"))
		So(ok, ShouldBeFalse)
	})
}
