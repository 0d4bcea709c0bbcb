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
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/nthand/steno/chord"
	"github.com/nthand/steno/dict"
)

// fakeDict is a minimal in-memory Dictionary for tests: exact-match lookup
// keyed on the strokes' formatted notation, joined with "/".
type fakeDict struct {
	entries    map[string]dict.Entry
	maxStrokes int
}

func newFakeDict(entries map[string]dict.Entry) *fakeDict {
	max := 1
	for k := range entries {
		n := 1
		for _, c := range k {
			if c == '/' {
				n++
			}
		}
		if n > max {
			max = n
		}
	}
	return &fakeDict{entries: entries, maxStrokes: max}
}

func (d *fakeDict) Get(strokes chord.Strokes) (dict.Entry, bool) {
	e, ok := d.entries[strokes.String()]
	return e, ok
}

func (d *fakeDict) MaxStrokes() int {
	return d.maxStrokes
}

type fakeWordList struct {
	words map[string]bool
}

func (w *fakeWordList) Contains(word string) bool {
	return w.words[word]
}

func mustChord(t *testing.T, s string) chord.Chord {
	t.Helper()
	c, err := chord.Parse(s)
	if err != nil {
		t.Fatalf("chord.Parse(%q): %v", s, err)
	}
	return c
}

func TestEngineSimpleWords(t *testing.T) {
	Convey("Given an engine with a tiny dictionary", t, func() {
		d := newFakeDict(map[string]dict.Entry{
			"KAT": {dict.Verbatim("cat")},
			"-S":  {dict.Suffix("s")},
		})
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		Convey("A single matching stroke emits its verbatim text, capitalized first", func() {
			err := e.RunKeys(mustChord(t, "KAT"))
			So(err, ShouldBeNil)

			out := e.Flush()
			So(out.Append, ShouldEqual, "Cat")
		})

		Convey("A dictionary suffix with no matching orthography rule attaches to the previous word as typed", func() {
			So(e.RunKeys(mustChord(t, "KAT")), ShouldBeNil)
			So(e.RunKeys(mustChord(t, "-S")), ShouldBeNil)

			out := e.Flush()
			So(out.Append, ShouldEqual, "Cats")
		})
	})
}

func TestEngineBackspace(t *testing.T) {
	Convey("Given an engine with a dictionary that includes backspace", t, func() {
		d := newFakeDict(map[string]dict.Entry{
			"KAT":  {dict.Verbatim("cat")},
			"TWBG": {dict.PloverCommand(dict.Backspace)},
		})
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		Convey("Backspace after a word undoes its entire emission", func() {
			So(e.RunKeys(mustChord(t, "KAT")), ShouldBeNil)
			e.Flush()

			So(e.RunKeys(mustChord(t, "TWBG")), ShouldBeNil)
			out := e.Flush()

			So(out.Delete.Chars, ShouldEqual, 3)
			So(out.Append, ShouldEqual, "")
		})

		Convey("Backspace with nothing in the backlog deletes a whole previous word", func() {
			So(e.RunKeys(mustChord(t, "TWBG")), ShouldBeNil)
			out := e.Flush()

			So(out.DeleteWords, ShouldEqual, 1)
		})
	})
}

func TestEngineNumbers(t *testing.T) {
	Convey("Given an engine with an empty dictionary", t, func() {
		d := newFakeDict(nil)
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		Convey("A number-bar chord types the digits it spells", func() {
			So(e.RunKeys(mustChord(t, "1-9")), ShouldBeNil)
			out := e.Flush()
			So(out.Append, ShouldEqual, "19")
		})

		Convey("A stroke with no dictionary entry falls back to its literal notation", func() {
			So(e.RunKeys(mustChord(t, "TPHO")), ShouldBeNil)
			out := e.Flush()
			So(out.Append, ShouldEqual, "TPHO")
		})
	})
}

func TestEngineQuit(t *testing.T) {
	Convey("A PLOVER:QUIT entry returns ErrQuit", t, func() {
		d := newFakeDict(map[string]dict.Entry{
			"TP-RT": {dict.PloverCommand(dict.Quit)},
		})
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		err := e.RunKeys(mustChord(t, "TP-RT"))
		So(errors.Is(err, ErrQuit), ShouldBeTrue)
	})
}

func TestEngineMultiStrokeRetranslation(t *testing.T) {
	Convey("Given a dictionary with both a one-stroke and a two-stroke entry", t, func() {
		d := newFakeDict(map[string]dict.Entry{
			"TPAOEUT":      {dict.Verbatim("fight")},
			"TPAOEUT/G": {dict.Verbatim("fighting")},
		})
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		Convey("The second stroke retroactively replaces the first word's output", func() {
			So(e.RunKeys(mustChord(t, "TPAOEUT")), ShouldBeNil)
			first := e.Flush()
			So(first.Append, ShouldEqual, "Fight")

			So(e.RunKeys(mustChord(t, "G")), ShouldBeNil)
			second := e.Flush()

			So(second.Delete.Chars, ShouldEqual, 5)
			So(second.Append, ShouldEqual, "Fighting")
		})
	})
}

func TestEngineUndoStrokeReplay(t *testing.T) {
	Convey("Given a dictionary with a two-stroke entry, its first stroke alone, and star-undo", t, func() {
		d := newFakeDict(map[string]dict.Entry{
			"HEL":     {dict.Verbatim("hell")},
			"HEL/HRO": {dict.Verbatim("hello")},
			"*":       {dict.PloverCommand(dict.Backspace)},
		})
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		Convey("Star-undo after the second stroke replays the first stroke alone", func() {
			So(e.RunKeys(mustChord(t, "HEL")), ShouldBeNil)
			first := e.Flush()
			So(first.Append, ShouldEqual, "Hell")

			So(e.RunKeys(mustChord(t, "HRO")), ShouldBeNil)
			second := e.Flush()
			So(second.Append, ShouldEqual, "Hello")

			So(e.RunKeys(mustChord(t, "*")), ShouldBeNil)
			third := e.Flush()

			So(third.Delete.Chars, ShouldEqual, 5)
			So(third.Append, ShouldEqual, "Hell")
			So(e.backlog.len(), ShouldEqual, 1)
		})
	})
}

func TestEngineSuffixUndoRestoration(t *testing.T) {
	Convey("Given a dictionary with a word, a suffix that fuses onto it, and star-undo", t, func() {
		d := newFakeDict(map[string]dict.Entry{
			"SELT": {dict.Verbatim("settle")},
			"D":    {dict.Suffix("ed")},
			"*":    {dict.PloverCommand(dict.Backspace)},
		})
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		Convey("The suffix stroke deletes and re-emits the fused word, and star-undo restores the original", func() {
			So(e.RunKeys(mustChord(t, "SELT")), ShouldBeNil)
			first := e.Flush()
			So(first.Append, ShouldEqual, "Settle")

			So(e.RunKeys(mustChord(t, "D")), ShouldBeNil)
			second := e.Flush()
			So(second.Delete.Chars, ShouldEqual, 6)
			So(second.Append, ShouldEqual, "Settled")

			So(e.RunKeys(mustChord(t, "*")), ShouldBeNil)
			third := e.Flush()

			So(third.Delete.Chars, ShouldEqual, 7)
			So(third.Append, ShouldEqual, "Settle")
		})
	})
}

func TestEngineResetMidEntry(t *testing.T) {
	Convey("Given a dictionary entry that appends text before resetting", t, func() {
		d := newFakeDict(map[string]dict.Entry{
			"KAT":   {dict.Verbatim("cat")},
			"TPHRO": {dict.Verbatim("partial"), dict.PloverCommand(dict.Reset)},
		})
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		Convey("Reset clears state, backlog, and in-progress output even mid-entry", func() {
			So(e.RunKeys(mustChord(t, "KAT")), ShouldBeNil)
			e.Flush()
			So(e.backlog.len(), ShouldEqual, 1)

			So(e.RunKeys(mustChord(t, "TPHRO")), ShouldBeNil)
			out := e.Flush()

			So(out.Append, ShouldEqual, "")
			So(out.Delete.Chars, ShouldEqual, 0)
			So(e.backlog.len(), ShouldEqual, 0)
			So(e.backlogEntryInProgress, ShouldEqual, "")
			So(e.state, ShouldResemble, InitialState)
		})
	})
}

func TestEngineGlueConcatenation(t *testing.T) {
	Convey("Given an engine with an empty dictionary", t, func() {
		d := newFakeDict(nil)
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		Convey("Consecutive number-bar chords glue their digits together with no space", func() {
			So(e.RunKeys(mustChord(t, "1-9")), ShouldBeNil)
			So(e.RunKeys(mustChord(t, "2-0")), ShouldBeNil)

			out := e.Flush()
			So(out.Append, ShouldEqual, "1920")
		})
	})
}

func TestEngineNumericTimeAndDollar(t *testing.T) {
	Convey("Given an engine with an empty dictionary", t, func() {
		d := newFakeDict(nil)
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngine(d, w)

		Convey("A full number-bar chord with reverse, dollar, and time suffixes decodes in one stroke", func() {
			So(e.RunKeys(mustChord(t, "1234567890EUBGDZ")), ShouldBeNil)
			out := e.Flush()
			So(out.Append, ShouldEqual, "$987605432100:00")
		})
	})
}

func TestEngineBacklogDepth(t *testing.T) {
	Convey("Given an engine with a backlog depth of 1", t, func() {
		d := newFakeDict(map[string]dict.Entry{
			"KAT": {dict.Verbatim("cat")},
			"TPOG": {dict.Verbatim("dog")},
		})
		w := &fakeWordList{words: map[string]bool{}}
		e := NewEngineWithBacklogDepth(d, w, 1)

		Convey("The backlog never holds more entries than its depth", func() {
			So(e.RunKeys(mustChord(t, "KAT")), ShouldBeNil)
			e.Flush()
			So(e.RunKeys(mustChord(t, "TPOG")), ShouldBeNil)
			e.Flush()

			So(e.backlog.len(), ShouldEqual, 1)
		})
	})
}
