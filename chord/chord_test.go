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

package chord

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Single keys parse to their own bit", t, func() {
		c, err := Parse("S")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(S))
	})

	Convey("A leading dash selects the right-hand twin", t, func() {
		c, err := Parse("-S")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(S2))
	})

	Convey("Repeating a doubled letter sets both twins", t, func() {
		c, err := Parse("SS")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(S).Set(S2))

		c, err = Parse("S-S")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(S).Set(S2))
	})

	Convey("Steno order decides the twin even without a dash", t, func() {
		c, err := Parse("BT")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(B).Set(T2))
	})

	Convey("Vowels parse without twins", t, func() {
		c, err := Parse("AOEU")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(A).Set(O).Set(E).Set(U))
	})

	Convey("Digits set the number bar and their associated key", t, func() {
		c, err := Parse("1234")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(NumberBar).Set(S).Set(T).Set(P).Set(H))
	})

	Convey("Sharp and digits combine with letters", t, func() {
		c, err := Parse("#*EU")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(NumberBar).Set(Star).Set(E).Set(U))
	})

	Convey("A long mixed chord parses correctly", t, func() {
		c, err := Parse("1234ER78S")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(NumberBar).Set(S).Set(T).Set(P).Set(H).Set(E).Set(R2).Set(P2).Set(L).Set(S2))
	})

	Convey("A dash mid-chord only affects the immediately following letter", t, func() {
		c, err := Parse("1-RBGS")
		So(err, ShouldBeNil)
		So(c, ShouldEqual, Single(NumberBar).Set(S).Set(R2).Set(B).Set(G).Set(S2))
	})

	Convey("A trailing dash is an error", t, func() {
		_, err := Parse("S-")
		So(err, ShouldEqual, ErrTrailingDash)
	})

	Convey("Setting the same non-number-bar key twice is an error", t, func() {
		_, err := Parse("SS-S")
		So(err, ShouldNotBeNil)
	})

	Convey("An unrecognized character is an error", t, func() {
		_, err := Parse("Q")
		So(err, ShouldNotBeNil)
	})
}

func TestString(t *testing.T) {
	Convey("Two twins of the same letter print without a dash", t, func() {
		So(Single(S).Set(S2).String(), ShouldEqual, "SS")
	})

	Convey("A lone right-hand twin prints with a leading dash", t, func() {
		So(Single(S2).String(), ShouldEqual, "-S")
	})

	Convey("Earlier keys in range suppress the dash", t, func() {
		So(Single(A).Set(O).Set(S2).String(), ShouldEqual, "AOS")
	})

	Convey("Parsing a formatted chord reproduces the original", t, func() {
		for _, raw := range []string{"TPH-PL", "KPA*BT", "1-RBGS", "-FRPBLG"} {
			c, err := Parse(raw)
			So(err, ShouldBeNil)
			formatted := c.String()
			reparsed, err := Parse(formatted)
			So(err, ShouldBeNil)
			So(reparsed, ShouldEqual, c)
		}
	})
}

func TestKeys(t *testing.T) {
	Convey("Keys are returned in steno order", t, func() {
		So(Single(A).Set(O).Set(S2).Keys(), ShouldResemble, []Key{A, O, S2})
	})
}

func TestStrokes(t *testing.T) {
	Convey("Strokes split on slash", t, func() {
		s, err := ParseStrokes("TPH-PL/PHRO*ER")
		So(err, ShouldBeNil)
		So(s.NumStrokes(), ShouldEqual, 2)
		So(s.String(), ShouldEqual, "TPH-PL/PHRO*ER")
	})
}
